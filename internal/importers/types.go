// Package importers bulk-loads community resources into the directory from
// a YAML (or JSON) file, the format staff keep partner lists in.
package importers

// ResourceFile is the document layout read by ParseResources.
type ResourceFile struct {
	Resources []ResourceEntry `yaml:"resources" json:"resources"`
}

// ResourceEntry is one organization as written by staff.
type ResourceEntry struct {
	Name               string `yaml:"name" json:"name"`
	NameZhTW           string `yaml:"name_zh_tw" json:"nameZhTW"`
	NameZhCN           string `yaml:"name_zh_cn" json:"nameZhCN"`
	Type               string `yaml:"type" json:"type"`
	Region             string `yaml:"region" json:"region"`
	Description        string `yaml:"description" json:"description"`
	DescriptionZhTW    string `yaml:"description_zh_tw" json:"descriptionZhTW"`
	DescriptionZhCN    string `yaml:"description_zh_cn" json:"descriptionZhCN"`
	Contact            string `yaml:"contact" json:"contact"`
	Location           string `yaml:"location" json:"location"`
	OperatingHours     string `yaml:"hours" json:"operatingHours"`
	OperatingHoursZhTW string `yaml:"hours_zh_tw" json:"operatingHoursZhTW"`
	OperatingHoursZhCN string `yaml:"hours_zh_cn" json:"operatingHoursZhCN"`
	Website            string `yaml:"website" json:"website"`
}

// ImportResult contains the results of an import operation.
type ImportResult struct {
	ItemsFound    int      `json:"items_found"`
	ItemsImported int      `json:"items_imported"`
	ItemsSkipped  int      `json:"items_skipped"`
	Preview       bool     `json:"preview"` // at least one write landed on the local store
	IDs           []string `json:"ids"`
	Errors        []string `json:"errors,omitempty"`
}
