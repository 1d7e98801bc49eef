package types

type InspectReport struct {
	Namespace    string   `yaml:"namespace"`
	Template     string   `yaml:"template"`
	Dependencies []string `yaml:"dependencies"`
	Paths        []string `yaml:"paths"`
}
