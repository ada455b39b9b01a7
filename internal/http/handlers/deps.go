package handlers

import (
	"automall/internal/assistant"
	"automall/internal/config"
	"automall/internal/domain"
	"automall/internal/store"
)

type Deps struct {
	Storefront *StorefrontHandler
	Product    *ProductHandler
	Cart       *CartHandler
	Favorites  *FavoritesHandler
	Branches   *BranchHandler
	Assistant  *AssistantHandler
	Admin      *AdminHandler
	EditMode   *EditMode
}

func NewDeps(st *store.CatalogStore, cfg config.Config, advisor *assistant.Service, categories []domain.Category) *Deps {
	em := NewEditMode()
	return &Deps{
		Storefront: &StorefrontHandler{Store: st, Categories: categories, Edit: em},
		Product:    &ProductHandler{Store: st, Edit: em},
		Cart:       &CartHandler{Store: st},
		Favorites:  &FavoritesHandler{Store: st},
		Branches:   &BranchHandler{Store: st, Edit: em},
		Assistant:  &AssistantHandler{Advisor: advisor},
		Admin:      &AdminHandler{Store: st, Edit: em, CodeHash: cfg.AdminCodeHash},
		EditMode:   em,
	}
}
