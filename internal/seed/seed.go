// Package seed holds the baseline catalog shipped with the store. The
// admin export endpoint emits the current product list in this shape so
// session edits can be promoted back here.
package seed

import "automall/internal/domain"

const StoreName = "Auto Mall Motores Zofri"

func Categories() []domain.Category {
	return []domain.Category{
		{ID: "motores", Name: "Motores Completos", Icon: "🔧"},
		{ID: "turbo", Name: "Turbos", Icon: "🌀"},
		{ID: "partes", Name: "Repuestos", Icon: "⚙️"},
	}
}

func Products() []domain.Product {
	return []domain.Product{
		{
			ID:        "mot-ssangyong-664",
			Name:      "Motor SsangYong Euro 3 664",
			Brand:     "SsangYong",
			Price:     1_800_000,
			Condition: domain.ConditionUsed,
			Stock:     1,
			SKU:       "MOT-SS-664-E3",
			Images: []string{
				"/img/motores/ssangyong-664.jpg",
				"/img/motores/ssangyong-664-2.jpg",
				"/img/motores/ssangyong-664-3.jpg",
				"/img/motores/ssangyong-664-4.jpg",
			},
			Description: "Motor Diesel SsangYong Euro 3 modelo 664. Unidad importada testeada y garantizada. Compatible con Actyon, Kyron y Rexton. Entrega inmediata en Iquique y despachos.",
			Category:    "motores",
		},
		{
			ID:            "mot-2jz-gte",
			Name:          "Motor Toyota 2JZ-GTE VVTi",
			Brand:         "Toyota",
			Price:         3_850_000,
			Condition:     domain.ConditionUsed,
			Stock:         3,
			OnOffer:       true,
			OriginalPrice: 4_500_000,
			Images:        []string{"/img/motores/toyota-2jz-gte.jpg"},
			Description:   "Motor legendario 3.0L Twin Turbo. Directo de Japón. Ideal para proyectos de alta potencia.",
			Category:      "motores",
		},
		{
			ID:            "mot-sr20det",
			Name:          "Motor Nissan SR20DET Black Top",
			Brand:         "Nissan",
			Price:         2_450_000,
			Condition:     domain.ConditionUsed,
			Stock:         2,
			OnOffer:       true,
			OriginalPrice: 2_800_000,
			Images:        []string{"/img/motores/nissan-sr20det.jpg"},
			Description:   "Motor 2.0 Turbo ideal para swaps en plataformas S13, S14 y S15.",
			Category:      "motores",
		},
		{
			ID:          "turbo-gt35",
			Name:        "Turbo Garret GT3582R Gen II",
			Brand:       "Universal",
			Price:       680_000,
			Condition:   domain.ConditionNew,
			Stock:       15,
			Images:      []string{"/img/motores/turbo-gt3582r.jpg"},
			Description: "Turbo de alto rendimiento con rodamientos cerámicos.",
			Category:    "turbo",
		},
	}
}

func Branches() []domain.Branch {
	return []domain.Branch{
		{
			ID:             "hospicio",
			City:           "Alto Hospicio",
			Region:         "Región de Tarapacá",
			Address:        "Av. Las Parcelas 1234, Casa Matriz",
			Phone:          "+56 9 6312 1125",
			MapImage:       "/img/sucursales/mapa-hospicio.jpg",
			IsHeadquarters: true,
		},
		{
			ID:       "iquique",
			City:     "Iquique",
			Region:   "Región de Tarapacá",
			Address:  "Recinto ZOFRI, Módulo 12",
			Phone:    "+56 9 6312 1125",
			MapImage: "/img/sucursales/mapa-iquique.jpg",
		},
	}
}
