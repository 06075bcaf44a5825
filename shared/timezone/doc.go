// Package timezone pins wall-clock values to the zone named by APP_TIMEZONE.
//
// Every service calls Init(cfg.App.Timezone) once at startup. Audit stamps
// (created_at, modified_at, last_login) come from Now and are rendered with
// Format. Stay and availability dates are calendar days and are parsed with
// ParseDate, which stays in UTC so they compare equal to Postgres
// DATE columns regardless of the configured zone.
package timezone
