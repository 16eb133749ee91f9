package config

// Config is the top-level configuration document for the calculator.
// It is loaded once per session and treated as read-only afterwards.
type Config struct {
	Version     string      `yaml:"version" json:"version"`
	Defaults    Defaults    `yaml:"defaults" json:"defaults"`
	FleetLimits FleetLimits `yaml:"fleet_limits" json:"fleet_limits"`
	Validation  Rules       `yaml:"validation" json:"validation"`
}

// Defaults seeds a new session: the starting fleet and project scalars.
type Defaults struct {
	Excavators []ExcavatorDefault `yaml:"excavators" json:"excavators"`
	Trucks     []TruckDefault     `yaml:"trucks" json:"trucks"`
	Project    ProjectDefaults    `yaml:"project" json:"project"`
}

// ExcavatorDefault describes one excavator in the default fleet.
type ExcavatorDefault struct {
	Name           string  `yaml:"name" json:"name"`
	BucketCapacity float64 `yaml:"bucket_capacity" json:"bucket_capacity"`
	CycleTime      float64 `yaml:"cycle_time" json:"cycle_time"`
}

// TruckDefault describes one truck in the default fleet.
type TruckDefault struct {
	Name          string  `yaml:"name" json:"name"`
	Capacity      float64 `yaml:"capacity" json:"capacity"`
	RoundTripTime float64 `yaml:"round_trip_time" json:"round_trip_time"`
}

// ProjectDefaults are the starting pond dimensions (feet) and work hours.
type ProjectDefaults struct {
	PondLength float64 `yaml:"pond_length" json:"pond_length"`
	PondWidth  float64 `yaml:"pond_width" json:"pond_width"`
	PondDepth  float64 `yaml:"pond_depth" json:"pond_depth"`
	WorkHours  float64 `yaml:"work_hours" json:"work_hours"`
}

// FleetLimits bounds how large each fleet may grow.
type FleetLimits struct {
	MaxExcavators int `yaml:"max_excavators" json:"max_excavators"`
	MaxTrucks     int `yaml:"max_trucks" json:"max_trucks"`
}

// Rule is an inclusive acceptance range for one input field.
type Rule struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Rules holds the per-field acceptance ranges and the decimal precision cap.
type Rules struct {
	MaxDecimals       int  `yaml:"max_decimals" json:"max_decimals"`
	ExcavatorCapacity Rule `yaml:"excavator_capacity" json:"excavator_capacity"`
	CycleTime         Rule `yaml:"cycle_time" json:"cycle_time"`
	TruckCapacity     Rule `yaml:"truck_capacity" json:"truck_capacity"`
	RoundTripTime     Rule `yaml:"round_trip_time" json:"round_trip_time"`
	PondLength        Rule `yaml:"pond_length" json:"pond_length"`
	PondWidth         Rule `yaml:"pond_width" json:"pond_width"`
	PondDepth         Rule `yaml:"pond_depth" json:"pond_depth"`
	WorkHours         Rule `yaml:"work_hours" json:"work_hours"`
}

// For returns the range rule for the named field.
// The name matches the field keys used by the validation package.
func (r Rules) For(field string) (Rule, bool) {
	switch field {
	case "excavator_capacity":
		return r.ExcavatorCapacity, true
	case "cycle_time":
		return r.CycleTime, true
	case "truck_capacity":
		return r.TruckCapacity, true
	case "round_trip_time":
		return r.RoundTripTime, true
	case "pond_length":
		return r.PondLength, true
	case "pond_width":
		return r.PondWidth, true
	case "pond_depth":
		return r.PondDepth, true
	case "work_hours":
		return r.WorkHours, true
	}
	return Rule{}, false
}
