package team

import "github.com/pitwallhq/pitwall/internal/domain/driver"

type InventoryItem struct {
	ItemID   int
	PartName string
	Quantity int
	Status   string
}

type Sponsor struct {
	SponsorID     int
	SponsorName   string
	ContractValue float64
}

type Engineer struct {
	EngineerID int
	Name       string
	Role       string
}

// Team aggregates everything a racing outfit brings to a season.
// Writes replace the whole record; nested lists are never merged.
type Team struct {
	ID        int
	Name      string
	Members   []string
	Inventory []InventoryItem
	Sponsors  []Sponsor
	Engineers []Engineer
	Drivers   []driver.Driver
}
