package user

type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

type User struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Sex  Sex    `json:"sex" yaml:"sex"`
}
