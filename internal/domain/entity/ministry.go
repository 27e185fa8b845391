package entity

// MinistryPM is the distinguished head-of-government cabinet slot.
const MinistryPM = "PM"

// Ministry is a cabinet slot. Static master data.
type Ministry struct {
	ID   string `yaml:"id" json:"id" firestore:"id"`
	Name string `yaml:"name" json:"name" firestore:"name"`
	Icon string `yaml:"icon" json:"icon" firestore:"icon"`
	// Key is the policy-domain key a party must declare to count as having
	// expertise for this ministry.
	Key string `yaml:"key" json:"key" firestore:"key"`
}

// MinistryList is the full ministry dataset in declaration order.
type MinistryList []Ministry

// FindByID returns the ministry with the given ID, or nil.
func (l MinistryList) FindByID(id string) *Ministry {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}
