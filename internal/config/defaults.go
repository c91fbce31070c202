package config

// Config file names, in lookup order.
const (
	ConfigFileName     = "mylint.yaml"
	ConfigFileNameAlt  = "mylint.yml"
	ConfigFileNameTOML = "mylint.toml"
)

// ConfigFileNames lists the names searched for in a directory.
var ConfigFileNames = []string{ConfigFileName, ConfigFileNameAlt, ConfigFileNameTOML}

// keyDelim separates nested koanf keys. Rule IDs may contain dots, so the
// usual "." would split them.
const keyDelim = "::"

// namingRuleID is the rule whose options are selector objects. Plugin
// variants such as "@typescript-eslint/naming-convention" are matched by
// suffix.
const namingRuleID = "naming-convention"
