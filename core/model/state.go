package model

// Game balance constants. These are fixed heuristics; exact values matter
// for behavioral parity and are exercised by the settlement tests.
const (
	LoanInterestRate      = 0.02 // daily, applied to the outstanding loan
	DepotCost             = 30000
	HubCost               = 100000
	DriverWage            = 200 // per driver per day
	BaseDeliveryRate      = 15  // revenue per delivered package
	ExpressBonus          = 10  // extra revenue for an on-time delivery
	StopsPerHour          = 15
	AvgSpeedMPH           = 45
	MaxHoursDOT           = 14.0
	OvertimeThreshold     = 8.0
	MaintenancePerVehicle = 50
	DepotFacilityCost     = 100
	HubFacilityCost       = 500
	DeliverySuccessRate   = 0.9
	OnTimeWindowDays      = 2
	DepotCapacity         = 100
	HubCapacity           = 500
	ServiceTownCount      = 5
	HubUnlockDay          = 30
	InitialPackageCount   = 5
	StartingCash          = 250000
	StartingLoan          = 50000
	StartingReputation    = 50
)

// NoticeLevel classifies a player-facing status message.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a human-readable status message produced by a core operation.
// Wording is presentation detail; the triggering condition is not.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Day     int         `json:"day"`
}

// Revenue holds cumulative per-category revenue totals. Never reset.
type Revenue struct {
	Deliveries float64 `json:"deliveries"`
	Express    float64 `json:"express"`
}

// Expenses holds per-category expense totals. Fuel accumulates across the
// whole game; wages, maintenance, facilities and interest are recomputed
// fresh each settlement from the current fleet and loan.
type Expenses struct {
	Wages       float64 `json:"wages"`
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Facilities  float64 `json:"facilities"`
	Interest    float64 `json:"interest"`
}

// Total sums all expense categories.
func (e Expenses) Total() float64 {
	return e.Wages + e.Fuel + e.Maintenance + e.Facilities + e.Interest
}

// Finances is the financial ledger section of the game state.
type Finances struct {
	Revenue  Revenue  `json:"revenue"`
	Expenses Expenses `json:"expenses"`
}

// Stats tracks lifetime delivery outcomes.
type Stats struct {
	TotalDeliveries  int `json:"totalDeliveries"`
	OnTimeDeliveries int `json:"onTimeDeliveries"`
	LateDeliveries   int `json:"lateDeliveries"`
}

// GameState is the whole simulation state. It is one explicit, serializable
// aggregate: persistence snapshots and restores it as a single blob.
type GameState struct {
	Day        int     `json:"day"`
	Cash       float64 `json:"cash"`
	Loan       float64 `json:"loan"`
	Reputation int     `json:"reputation"`

	ServiceTowns []Town        `json:"serviceTowns"`
	Depots       []Depot       `json:"depots"`
	Hubs         []Hub         `json:"hubs"`
	Vehicles     []Vehicle     `json:"vehicles"`
	Drivers      []Driver      `json:"drivers"`
	Routes       []ActiveRoute `json:"routes"`
	Packages     []Package     `json:"packages"`

	Finances Finances `json:"finances"`
	Stats    Stats    `json:"stats"`

	HubsUnlocked bool     `json:"hubsUnlocked"`
	Notices      []Notice `json:"notices,omitempty"`
}

// NewGameState returns the day-one starting state for the given service
// area. Initial demand is generated by the engine, not here.
func NewGameState(serviceTowns []Town) *GameState {
	return &GameState{
		Day:          1,
		Cash:         StartingCash,
		Loan:         StartingLoan,
		Reputation:   StartingReputation,
		ServiceTowns: serviceTowns,
	}
}
