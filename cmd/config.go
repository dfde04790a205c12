package cmd

type Config struct {
	HTTPPort     string
	SeedDemoData bool
}
