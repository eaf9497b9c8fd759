package model

// ChecklistItem is one consent item the uploader must acknowledge before an
// upload is accepted when its Required flag is set.
type ChecklistItem struct {
	ID       string `json:"id" dynamodbav:"id"`
	Text     string `json:"text" dynamodbav:"text"`
	Required bool   `json:"required" dynamodbav:"required"`
}

// ChecklistConfig is the singleton configuration item
// (PK "CONFIG", SK "UPLOAD_CHECKLIST"). It is written only by the
// seedconfig tool and read by the config and upload handlers.
type ChecklistConfig struct {
	PK        string          `dynamodbav:"PK" json:"-"`
	SK        string          `dynamodbav:"SK" json:"-"`
	Items     []ChecklistItem `dynamodbav:"items" json:"items"`
	UpdatedAt string          `dynamodbav:"updatedAt" json:"updatedAt"`
}

// MissingRequiredItems returns the ids of required items absent from checked.
// Order follows the configured item order.
func (c *ChecklistConfig) MissingRequiredItems(checked []string) []string {
	set := make(map[string]struct{}, len(checked))
	for _, id := range checked {
		set[id] = struct{}{}
	}
	var missing []string
	for _, item := range c.Items {
		if !item.Required {
			continue
		}
		if _, ok := set[item.ID]; !ok {
			missing = append(missing, item.ID)
		}
	}
	return missing
}
