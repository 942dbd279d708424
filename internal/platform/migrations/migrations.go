package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema owned by this service. Adapters never automigrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&patientRecord{})
}

// RunNorthwind creates the northwind_psql tables the Northwind adapter reads. Production
// databases are normally restored from the upstream dump; this covers empty databases and tests.
func RunNorthwind(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&categoryRecord{},
		&supplierRecord{},
		&customerRecord{},
		&employeeRecord{},
		&productRecord{},
		&orderRecord{},
		&orderDetailRecord{},
	)
}

// Patient schema mirrors the patients Postgres adapter.
type patientRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name            string    `gorm:"column:name;not null"`
	Surname         string    `gorm:"column:surname;not null"`
	RegisterDate    time.Time `gorm:"column:register_date;type:date;not null"`
	VaccinationDate time.Time `gorm:"column:vaccination_date;type:date;not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (patientRecord) TableName() string { return "patients" }

type categoryRecord struct {
	CategoryID   int64   `gorm:"primaryKey;autoIncrement;column:category_id"`
	CategoryName string  `gorm:"column:category_name;size:15;not null"`
	Description  *string `gorm:"column:description"`
}

func (categoryRecord) TableName() string { return "categories" }

type supplierRecord struct {
	SupplierID  int64   `gorm:"primaryKey;column:supplier_id"`
	CompanyName string  `gorm:"column:company_name;size:40;not null"`
	City        *string `gorm:"column:city"`
	Country     *string `gorm:"column:country"`
}

func (supplierRecord) TableName() string { return "suppliers" }

type customerRecord struct {
	CustomerID  string  `gorm:"primaryKey;column:customer_id;type:bpchar"`
	CompanyName string  `gorm:"column:company_name;size:40;not null"`
	ContactName *string `gorm:"column:contact_name"`
	Address     *string `gorm:"column:address"`
	City        *string `gorm:"column:city"`
	PostalCode  *string `gorm:"column:postal_code"`
	Country     *string `gorm:"column:country"`
}

func (customerRecord) TableName() string { return "customers" }

type employeeRecord struct {
	EmployeeID int64   `gorm:"primaryKey;column:employee_id"`
	LastName   string  `gorm:"column:last_name;size:20;not null"`
	FirstName  string  `gorm:"column:first_name;size:10;not null"`
	City       *string `gorm:"column:city"`
}

func (employeeRecord) TableName() string { return "employees" }

type productRecord struct {
	ProductID    int64    `gorm:"primaryKey;column:product_id"`
	ProductName  string   `gorm:"column:product_name;size:40;not null"`
	SupplierID   *int64   `gorm:"column:supplier_id;index"`
	CategoryID   *int64   `gorm:"column:category_id;index"`
	UnitPrice    *float32 `gorm:"column:unit_price"`
	Discontinued int32    `gorm:"column:discontinued;not null;default:0"`
}

func (productRecord) TableName() string { return "products" }

type orderRecord struct {
	OrderID    int64      `gorm:"primaryKey;column:order_id"`
	CustomerID *string    `gorm:"column:customer_id;type:bpchar;index"`
	EmployeeID *int64     `gorm:"column:employee_id"`
	OrderDate  *time.Time `gorm:"column:order_date;type:date"`
}

func (orderRecord) TableName() string { return "orders" }

type orderDetailRecord struct {
	OrderID   int64   `gorm:"primaryKey;column:order_id"`
	ProductID int64   `gorm:"primaryKey;column:product_id;index"`
	UnitPrice float32 `gorm:"column:unit_price;not null"`
	Quantity  int32   `gorm:"column:quantity;not null"`
	Discount  float32 `gorm:"column:discount;not null"`
}

func (orderDetailRecord) TableName() string { return "order_details" }
