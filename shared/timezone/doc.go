// Package timezone pins every business date to the hotel's local zone.
//
// Stay nights, invoice numbers (INV-YYYYMMDD-...) and the dates printed on
// responses are all computed in the zone named by APP_TIMEZONE, so a
// checkout at 00:30 local time lands on the right invoice day regardless of
// where the process runs. The zone is loaded once when the package is
// imported and falls back to UTC when the name is unknown.
//
//	now := timezone.Now()
//	day, err := timezone.ParseDate("2024-03-01") // midnight, hotel time
//	label := timezone.Format(now, constant.DateFormat)
package timezone
