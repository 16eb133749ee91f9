package fleet

// Rate returns the excavator's individual dig rate in cubic yards per minute.
func (e Excavator) Rate() float64 {
	if e.CycleTime <= 0 {
		return 0
	}
	return e.BucketCapacity / e.CycleTime
}

// Rate returns the truck's individual haul rate in cubic yards per minute.
func (t Truck) Rate() float64 {
	if t.RoundTripTime <= 0 {
		return 0
	}
	return t.Capacity / t.RoundTripTime
}

// ExcavationRate sums the dig rates of active excavators (yd³/minute).
// Inactive equipment stays in the list but contributes nothing.
func (f Fleet) ExcavationRate() float64 {
	total := 0.0
	for _, e := range f.Excavators {
		if e.IsActive {
			total += e.Rate()
		}
	}
	return total
}

// HaulingRate sums the haul rates of active trucks (yd³/minute).
func (f Fleet) HaulingRate() float64 {
	total := 0.0
	for _, t := range f.Trucks {
		if t.IsActive {
			total += t.Rate()
		}
	}
	return total
}

// ActiveCounts returns how many excavators and trucks are currently active.
func (f Fleet) ActiveCounts() (excavators, trucks int) {
	for _, e := range f.Excavators {
		if e.IsActive {
			excavators++
		}
	}
	for _, t := range f.Trucks {
		if t.IsActive {
			trucks++
		}
	}
	return excavators, trucks
}
