package dataset

import "dashgen/internal/model"

func floatPtr(v float64) *float64 { return &v }

// SampleProfile is a canned e-commerce orders profile used by demo
// flows, shaped exactly like collaborator output.
func SampleProfile() model.DatasetProfile {
	return model.DatasetProfile{
		Analysis: model.Analysis{
			Title:     "ecommerce_orders",
			DateStart: "2023-01-01",
			DateEnd:   "2023-12-31",
		},
		Table: model.Table{
			N:             1000,
			NVar:          9,
			MemorySize:    289456,
			NCellsMissing: 120,
			PCellsMissing: 0.0133,
			Types: map[string]int{
				model.VarTypeNumeric:     5,
				model.VarTypeCategorical: 3,
				model.VarTypeDateTime:    1,
			},
			NDuplicates: 12,
			PDuplicates: 0.012,
		},
		Variables: map[string]model.Variable{
			"order_id": {
				Type: model.VarTypeNumeric, N: 1000, Count: 1000,
				NDistinct: 1000, PDistinct: 1, IsUnique: true,
				Min: floatPtr(1), Max: floatPtr(1000), Mean: floatPtr(500.5),
			},
			"customer_id": {
				Type: model.VarTypeNumeric, N: 1000, Count: 1000,
				NDistinct: 412, PDistinct: 0.412,
				Min: floatPtr(101), Max: floatPtr(999), Mean: floatPtr(548.2),
			},
			"order_date": {
				Type: model.VarTypeDateTime, N: 1000, Count: 1000,
				NDistinct: 361, PDistinct: 0.361,
			},
			"product_category": {
				Type: model.VarTypeCategorical, N: 1000, Count: 985,
				NMissing: 15, PMissing: 0.015, NDistinct: 5, PDistinct: 0.005,
				ValueCounts: map[string]int{
					"Electronics": 324,
					"Clothing":    287,
					"Books":       176,
					"Furniture":   118,
					"Toys":        80,
				},
			},
			"price": {
				Type: model.VarTypeNumeric, N: 1000, Count: 1000,
				NDistinct: 487, PDistinct: 0.487,
				Min: floatPtr(4.99), Max: floatPtr(1299.99), Mean: floatPtr(186.43),
			},
			"quantity": {
				Type: model.VarTypeNumeric, N: 1000, Count: 1000,
				NDistinct: 8, PDistinct: 0.008,
				Min: floatPtr(1), Max: floatPtr(8), Mean: floatPtr(2.1),
			},
			"total_amount": {
				Type: model.VarTypeNumeric, N: 1000, Count: 1000,
				NDistinct: 812, PDistinct: 0.812,
				Min: floatPtr(4.99), Max: floatPtr(3899.97), Mean: floatPtr(391.5),
			},
			"status": {
				Type: model.VarTypeCategorical, N: 1000, Count: 1000,
				NDistinct: 4, PDistinct: 0.004,
				ValueCounts: map[string]int{
					"delivered":  612,
					"in_transit": 203,
					"processing": 141,
					"cancelled":  44,
				},
			},
			"payment_method": {
				Type: model.VarTypeCategorical, N: 1000, Count: 895,
				NMissing: 105, PMissing: 0.105, NDistinct: 4, PDistinct: 0.004,
				ValueCounts: map[string]int{
					"credit_card":   498,
					"paypal":        201,
					"debit_card":    142,
					"bank_transfer": 54,
				},
			},
		},
		Alerts: []string{
			"payment_method has 105 (10.5%) missing values",
			"order_id has unique values",
		},
	}
}
