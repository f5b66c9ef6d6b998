package mappers

import "time"

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func millisPtrToTime(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	m := t.UnixMilli()
	return &m
}
