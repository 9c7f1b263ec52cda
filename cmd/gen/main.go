package main

import (
	"detailers/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CompanyModel{},
		model.CompanyLocationModel{},
		model.LeadModel{},
		model.ClaimModel{},
		model.OwnerModel{},
		model.RefreshTokenModel{},
		model.OwnerDeviceModel{},
		model.MediaAssetModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
