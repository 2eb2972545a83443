package timeutil

import "time"

// Todas as datas da API trafegam neste formato e são armazenadas em UTC.
const WireFormat = "2006-01-02 15:04:05"

func Now() time.Time {
	return time.Now().UTC()
}

// ParseDateTime interpreta a data/hora do agendamento como UTC.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(WireFormat, s, time.UTC)
}

func Format(t time.Time) string {
	return t.UTC().Format(WireFormat)
}
