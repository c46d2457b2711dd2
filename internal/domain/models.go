// Package domain defines the persistence models for the veterinary
// appointment platform: reference data (cities, hospitals, doctors),
// user identities, pets, and appointments. These types are mapped with
// GORM and form the core data layer of the application.
package domain

import "time"

// City is immutable reference data: one of the 81 provinces the platform
// operates in. Rows are seeded at migration time and never mutated through
// the API.
type City struct {
	ID   int    `json:"cityId"   gorm:"column:cityId;primaryKey;autoIncrement"`
	Name string `json:"cityName" gorm:"column:cityName;type:varchar(50);not null"`

	// Hospitals located in this city. A city cannot be removed while
	// hospitals reference it.
	Hospitals []Hospital `json:"-" gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for City.
func (City) TableName() string { return "cities" }

// Hospital represents a veterinary hospital. Each hospital belongs to
// exactly one city and employs zero or more doctors.
//
// Fields:
//   - ID: integer primary key.
//   - Name / Phone / Address / Description / DistrictName: descriptive data.
//   - CityID: foreign key to the owning city (restrict on city delete).
//   - IsOnDuty: whether the hospital is currently on emergency duty.
type Hospital struct {
	ID           int    `json:"hospitalId"   gorm:"column:hospitalId;primaryKey;autoIncrement"`
	Name         string `json:"hospitalName" gorm:"column:hospitalName;type:varchar(150);not null"`
	CityID       int    `json:"cityId"       gorm:"column:cityId;not null;index"`
	Phone        string `json:"phone"        gorm:"column:phone;type:varchar(50);not null"`
	Address      string `json:"address"      gorm:"column:address;type:varchar(200);not null"`
	Description  string `json:"description"  gorm:"column:description;type:varchar(500)"`
	DistrictName string `json:"districtName" gorm:"column:districtName;type:varchar(100)"`
	IsOnDuty     bool   `json:"isOnDuty"     gorm:"column:isOnDuty;not null;default:false"`

	// Doctors employed by this hospital. Deleting the hospital removes
	// its doctors as well.
	Doctors []Doctor `json:"-" gorm:"foreignKey:HospitalID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Hospital.
func (Hospital) TableName() string { return "hospitals" }

// Doctor is a veterinarian employed by exactly one hospital. Doctors are
// cascade-deleted when their hospital is removed; appointments that
// reference a deleted doctor survive with a null doctor reference.
type Doctor struct {
	ID         int    `json:"doctorId"   gorm:"column:doctorId;primaryKey;autoIncrement"`
	Name       string `json:"doctorName" gorm:"column:doctorName;type:varchar(100);not null"`
	Phone      string `json:"phone"      gorm:"column:phone;type:varchar(20);not null"`
	HospitalID int    `json:"hospitalId" gorm:"column:hospitalId;not null;index"`
}

// TableName returns the database table name for Doctor.
func (Doctor) TableName() string { return "doctors" }

// User is a registered pet owner. The phone number is the login identity
// and is globally unique (10 digits). The password is stored only as an
// Argon2id digest and is never serialized into API responses.
//
// A user cannot be deleted while pets reference them.
type User struct {
	ID           int       `json:"userId"   gorm:"column:userId;primaryKey;autoIncrement"`
	Name         string    `json:"userName" gorm:"column:userName;type:varchar(50);not null"`
	Phone        string    `json:"phone"    gorm:"column:phone;type:varchar(10);not null;uniqueIndex"`
	Email        string    `json:"email"    gorm:"column:email;type:varchar(100)"`
	PasswordHash string    `json:"-"        gorm:"column:passwordHash;type:varchar(255);not null"`
	CityID       int       `json:"cityId"   gorm:"column:cityId;not null;index"`
	Address      string    `json:"address"  gorm:"column:address;type:varchar(1000)"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:createdAt"`

	// City is the user's home province.
	City City `json:"-" gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Pet is an animal owned by a user. Optional attributes are pointers so
// the API can distinguish "absent" from zero values. Deleting the owner
// is restricted while pets exist; deleting a pet is restricted while
// appointments reference it.
type Pet struct {
	ID        int       `json:"petId"    gorm:"column:petId;primaryKey;autoIncrement"`
	Name      string    `json:"petName"  gorm:"column:petName;type:varchar(50);not null"`
	Type      string    `json:"petType"  gorm:"column:petType;type:varchar(50);not null"`
	Age       *int      `json:"age,omitempty"    gorm:"column:age"`
	Gender    *string   `json:"gender,omitempty" gorm:"column:gender;type:varchar(10)"`
	Breed     *string   `json:"breed,omitempty"  gorm:"column:breed;type:varchar(100)"`
	Notes     *string   `json:"notes,omitempty"  gorm:"column:notes;type:varchar(500)"`
	UserID    int       `json:"userId"   gorm:"column:userId;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt"`

	// User is the pet's owner.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Pet.
func (Pet) TableName() string { return "pets" }

// Appointment books a pet into a hospital on a date, optionally with a
// specific doctor. DoctorID is nullable: when the doctor is deleted the
// appointment survives with a null reference. The pet reference is
// restricted instead, so pets with bookings cannot be removed.
//
// IsDone defaults to false and is mutated only by the explicit
// completion operation.
type Appointment struct {
	ID         int       `json:"appointmentId"   gorm:"column:appointmentId;primaryKey;autoIncrement"`
	PetID      int       `json:"petId"           gorm:"column:petId;not null;index"`
	Date       time.Time `json:"appointmentDate" gorm:"column:appointmentDate;not null"`
	IsDone     bool      `json:"isDone"          gorm:"column:isDone;not null;default:false"`
	HospitalID int       `json:"hospitalId"      gorm:"column:hospitalId;not null;index"`
	DoctorID   *int      `json:"doctorId"        gorm:"column:doctorId;index"`

	// Pet is the booked animal. The FK restricts pet deletion while
	// this appointment exists.
	Pet Pet `json:"-" gorm:"foreignKey:PetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	// Doctor is optional; on doctor deletion the column is set to NULL.
	Doctor *Doctor `json:"-" gorm:"foreignKey:DoctorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Appointment.
func (Appointment) TableName() string { return "appointments" }
