// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds the fixed reference data: the 81
// provinces (keyed by their official plate codes) and the initial set of
// hospitals. Seeding is idempotent: rows are inserted only when the
// tables are empty, so restarts never duplicate reference data.
package repo

import (
	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// seedCities lists the provinces in plate-code order; the slice index + 1
// is the city ID.
var seedCities = []string{
	"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Amasya", "Ankara",
	"Antalya", "Artvin", "Aydın", "Balıkesir", "Bilecik", "Bingöl",
	"Bitlis", "Bolu", "Burdur", "Bursa", "Çanakkale", "Çankırı", "Çorum",
	"Denizli", "Diyarbakır", "Edirne", "Elazığ", "Erzincan", "Erzurum",
	"Eskişehir", "Gaziantep", "Giresun", "Gümüşhane", "Hakkari", "Hatay",
	"Isparta", "Mersin", "İstanbul", "İzmir", "Kars", "Kastamonu",
	"Kayseri", "Kırklareli", "Kırşehir", "Kocaeli", "Konya", "Kütahya",
	"Malatya", "Manisa", "Kahramanmaraş", "Mardin", "Muğla", "Muş",
	"Nevşehir", "Niğde", "Ordu", "Rize", "Sakarya", "Samsun", "Siirt",
	"Sinop", "Sivas", "Tekirdağ", "Tokat", "Trabzon", "Tunceli",
	"Şanlıurfa", "Uşak", "Van", "Yozgat", "Zonguldak", "Aksaray",
	"Bayburt", "Karaman", "Kırıkkale", "Batman", "Şırnak", "Bartın",
	"Ardahan", "Iğdır", "Yalova", "Karabük", "Kilis", "Osmaniye", "Düzce",
}

// seedHospitals is the initial hospital directory.
var seedHospitals = []domain.Hospital{
	{ID: 1, Name: "Acibadem Veteriner Hastanesi", CityID: 34, Phone: "0212-555-0001",
		Address: "İstanbul, Kadıköy", Description: "Modern veteriner hastanesi", DistrictName: "Kadıköy"},
	{ID: 2, Name: "American Hospital Vet", CityID: 34, Phone: "0212-555-0002",
		Address: "İstanbul, Nişantaşı", Description: "Uluslararası standartlarda hizmet", DistrictName: "Şişli"},
	{ID: 3, Name: "Ankara Veteriner Merkezi", CityID: 6, Phone: "0312-555-0001",
		Address: "Ankara, Keçiören", Description: "Ankara'nın en iyi veteriner merkezi", DistrictName: "Keçiören"},
	{ID: 4, Name: "İzmir Pet Hospital", CityID: 35, Phone: "0232-555-0001",
		Address: "İzmir, Alsancak", Description: "Evcil hayvanlar için özel hizmetler", DistrictName: "Konak"},
	{ID: 5, Name: "Tekirdağ Vet Kliniği", CityID: 59, Phone: "0282-555-0001",
		Address: "Tekirdağ, Merkez", Description: "Tekirdağ'da güvenilir veteriner hizmeti", DistrictName: "Süleymanpaşa"},
}

// Seed populates the cities and hospitals tables when they are empty.
// It runs inside a single transaction so a partial seed never persists.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.City{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			cities := make([]domain.City, len(seedCities))
			for i, name := range seedCities {
				cities[i] = domain.City{ID: i + 1, Name: name}
			}
			if err := tx.Create(&cities).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&domain.Hospital{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			if err := tx.Create(&seedHospitals).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
