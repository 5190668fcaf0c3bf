package resource

type Kind string

const (
	KindVehicle    Kind = "vehicle"
	KindAttraction Kind = "attraction"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindVehicle, KindAttraction:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
