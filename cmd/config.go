package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PendingAuthorizationReminderAfter is a Go duration string; deliveries
	// pending authorization longer than this show up in the reminder job.
	PendingAuthorizationReminderAfter string
}
