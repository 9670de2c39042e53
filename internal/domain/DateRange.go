package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MissingDateValue é o valor enviado pela fórmula da planilha quando a célula está vazia
const MissingDateValue = "MISSING"

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateRange é um intervalo inclusivo de datas, sem componente de hora
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange valida duas datas no formato YYYY-MM-DD
func NewDateRange(start, end string) (DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" || end == "" || start == MissingDateValue || end == MissingDateValue {
		return DateRange{}, NewValidationError("date_range", "start and end dates are required (YYYY-MM-DD)")
	}

	startDate, err := parseDateOnly("start", start)
	if err != nil {
		return DateRange{}, err
	}

	endDate, err := parseDateOnly("end", end)
	if err != nil {
		return DateRange{}, err
	}

	if startDate.After(endDate) {
		return DateRange{}, NewValidationError("date_range", fmt.Sprintf("start date %s is after end date %s", start, end))
	}

	return DateRange{Start: startDate, End: endDate}, nil
}

// IsValidDateString verifica o formato YYYY-MM-DD sem validar o calendário
func IsValidDateString(value string) bool {
	return dateOnlyPattern.MatchString(value)
}

func parseDateOnly(field, value string) (time.Time, error) {
	if !IsValidDateString(value) {
		return time.Time{}, NewValidationError(field, "invalid date format, expected YYYY-MM-DD")
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, fmt.Sprintf("invalid date %q", value))
	}

	return date, nil
}

func (r DateRange) StartString() string {
	return r.Start.Format(time.DateOnly)
}

func (r DateRange) EndString() string {
	return r.End.Format(time.DateOnly)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.StartString(), r.EndString())
}
