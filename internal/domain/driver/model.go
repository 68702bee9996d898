package driver

// Physical condition values accepted for a driver.
const (
	ConditionFit        = "Fit"
	ConditionInjured    = "Injured"
	ConditionRecovering = "Recovering"
)

// Driver is a competitor snapshot. It is embedded in teams and
// performance records and never stored on its own.
type Driver struct {
	ID                int
	Name              string
	Abbreviation      string
	Nationality       string
	PhysicalCondition string
}
