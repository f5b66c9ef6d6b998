package usecases

import (
	"context"

	"crewdesk/internal/application/ticket/dto"
	"crewdesk/internal/domain/organization"
	"crewdesk/internal/domain/ticket"
	vo "crewdesk/internal/domain/ticket/valueobjects"
	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor          Actor
	OrganizationID *uint
	Status         string
	Priority       string
	Category       string
	Search         string
	AssignedToMe   bool
	ReportedByMe   bool
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo     ticket.TicketRepository
	membershipRepo organization.MembershipRepository
	logger         logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	membershipRepo organization.MembershipRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:     ticketRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

var allowedSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"priority":   true,
	"status":     true,
	"reference":  true,
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to list tickets")
	}

	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}
	// Non-staff viewers never see internal comments, so their counts exclude
	// them as well.
	counts, err := uc.ticketRepo.CountComments(ctx, ids, query.Actor.isStaff())
	if err != nil {
		return nil, errors.WrapInternal(err, "failed to count comments")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t, counts[t.ID()]))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(ctx context.Context, query ListTicketsQuery) (*ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		OrganizationID: query.OrganizationID,
		Search:         query.Search,
		Page:           query.Page,
		PageSize:       query.PageSize,
		SortBy:         query.SortBy,
		SortOrder:      query.SortOrder,
	}

	if query.Actor.isStaff() {
		// Staff may omit the org scope and browse across tenants.
		filter.CrossTenant = query.OrganizationID == nil
	} else {
		if query.OrganizationID == nil {
			return nil, errors.NewForbiddenError("organization id is required")
		}
		m, err := uc.membershipRepo.Get(ctx, query.Actor.UserID, *query.OrganizationID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewForbiddenError("you are not a member of this organization")
			}
			return nil, errors.WrapInternal(err, "failed to check membership")
		}
		// Plain members see only their own tickets inside the organization;
		// tenant admins and owners see the whole queue.
		if !m.Role().CanManageMembers() {
			reporterID := query.Actor.UserID
			filter.ReporterID = &reporterID
		}
	}

	if query.AssignedToMe {
		assigneeID := query.Actor.UserID
		filter.AssigneeID = &assigneeID
	}
	if query.ReportedByMe {
		reporterID := query.Actor.UserID
		filter.ReporterID = &reporterID
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if filter.SortBy != "" && !allowedSortFields[filter.SortBy] {
		return nil, errors.NewValidationError("unsupported sort field: " + filter.SortBy)
	}
	if filter.SortOrder != "" && filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		return nil, errors.NewValidationError("sort order must be asc or desc")
	}

	return &filter, nil
}
