package timezone

import "time"

// O salão opera em um único fuso; validade de voucher e exibição de
// horários usam sempre o relógio local dele.
const SalonTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(SalonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
