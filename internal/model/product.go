package model

type Product struct {
	ID       int     `db:"id" json:"id" yaml:"-"`
	Name     string  `db:"name" json:"name" yaml:"name"`
	Category string  `db:"category" json:"category" yaml:"category"`
	Price    float64 `db:"price" json:"price" yaml:"price"`
}
