package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// LookbackRange retorna o intervalo dos últimos days dias completos, sem incluir hoje
func LookbackRange(now time.Time, days int) (start, end string) {
	yesterday := now.AddDate(0, 0, -1)
	return now.AddDate(0, 0, -days).Format(time.DateOnly), yesterday.Format(time.DateOnly)
}
