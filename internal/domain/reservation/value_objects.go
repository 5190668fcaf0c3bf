package reservation

const MaxUnits = 10000

type Units struct {
	value int
}

func NewUnits(v int) (Units, error) {
	if v < 1 || v > MaxUnits {
		return Units{}, ErrInvalidUnits
	}
	return Units{value: v}, nil
}

func (u Units) Int() int { return u.value }

// Mileage is an odometer reading in whole kilometres.
type Mileage struct {
	value int64
}

func NewMileage(v int64) (Mileage, error) {
	if v < 0 {
		return Mileage{}, ErrInvalidMileage
	}
	return Mileage{value: v}, nil
}

func (m Mileage) Int64() int64 { return m.value }
