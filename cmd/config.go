package cmd

// Config carries all runtime settings, loaded from the environment in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PaymentServiceURL      string
	NotificationServiceURL string
	InventoryServiceURL    string
}
