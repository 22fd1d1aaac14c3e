package domain

// Cafe is the single persisted entity: one row in the cafes table.
// CoffeePrice is the only field mutable after creation; nil means unset.
type Cafe struct {
	ID           int64
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	Seats        string
	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool
	CoffeePrice  *string
}
