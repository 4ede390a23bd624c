package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
)

const dateLayout = "2006-01-02"

// parseFilter reads method, status, from, to and user from the query string.
// from and to accept RFC 3339 timestamps or dates; a bare to-date includes
// the whole day.
func parseFilter(q url.Values) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	if v := q.Get("method"); v != "" {
		m, err := payments.ParseMethod(v)
		if err != nil {
			return filter, err
		}
		filter.Method = m.String()
	}

	if v := q.Get("status"); v != "" {
		s, err := payments.ParseStatus(v)
		if err != nil {
			return filter, err
		}
		filter.Status = string(s)
	}

	if v := q.Get("from"); v != "" {
		from, _, err := parseTime(v)
		if err != nil {
			return filter, fmt.Errorf("invalid from: %w", err)
		}
		filter.From = &from
	}

	if v := q.Get("to"); v != "" {
		to, dateOnly, err := parseTime(v)
		if err != nil {
			return filter, fmt.Errorf("invalid to: %w", err)
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.To = &to
	}

	filter.UserLogin = q.Get("user")
	return filter, nil
}

func parseTime(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
