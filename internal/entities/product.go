package entities

// Product is a catalog item. The identifier is assigned by the caller.
type Product struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	Name string `gorm:"not null;size:255;column:name" json:"name"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "product"
}
