package models

// Target is a named wake target loaded from the targets file.
type Target struct {
	Name string `mapstructure:"-"`
	MAC  string `mapstructure:"mac"`
}
