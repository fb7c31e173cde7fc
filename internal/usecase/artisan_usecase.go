package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ArtisanUsecase struct {
	tx       repo.TransactionManager
	artisans repo.ArtisanRepository
	products repo.ProductRepository
}

func NewArtisanUsecase(
	tx repo.TransactionManager,
	artisans repo.ArtisanRepository,
	products repo.ProductRepository,
) *ArtisanUsecase {
	return &ArtisanUsecase{tx: tx, artisans: artisans, products: products}
}

type ArtisanInput struct {
	DisplayName string
	Location    string
	Story       string
}

func validateArtisanInput(in ArtisanInput) error {
	if strings.TrimSpace(in.DisplayName) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Story) == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if len(strings.TrimSpace(in.Story)) < 20 {
		return NewHTTPError(http.StatusBadRequest, "story too short")
	}
	return nil
}

// BecomeArtisan creates the seller profile. At most one per user.
func (u *ArtisanUsecase) BecomeArtisan(ctx context.Context, userID int64, in ArtisanInput) (model.ArtisanProfile, error) {
	if userID <= 0 {
		return model.ArtisanProfile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateArtisanInput(in); err != nil {
		return model.ArtisanProfile{}, err
	}

	_, err := u.artisans.FindByUserID(ctx, userID)
	if err == nil {
		return model.ArtisanProfile{}, NewHTTPError(http.StatusConflict, "already an artisan")
	}
	if err != repo.ErrNotFound {
		return model.ArtisanProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	a, err := u.artisans.Create(ctx, model.ArtisanProfile{
		UserID:      userID,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Location:    strings.TrimSpace(in.Location),
		Story:       strings.TrimSpace(in.Story),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		// The unique index on user_id catches a concurrent double-submit.
		return model.ArtisanProfile{}, NewHTTPError(http.StatusConflict, "already an artisan")
	}
	return a, nil
}

func (u *ArtisanUsecase) UpdateArtisan(ctx context.Context, userID int64, in ArtisanInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateArtisanInput(in); err != nil {
		return err
	}

	a, err := u.artisans.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return ErrNotArtisan
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	a.DisplayName = strings.TrimSpace(in.DisplayName)
	a.Location = strings.TrimSpace(in.Location)
	a.Story = strings.TrimSpace(in.Story)

	if err := u.artisans.Update(ctx, a); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type DeactivateOutput struct {
	ArtisanID           int64 `json:"artisan_id"`
	DeactivatedProducts int64 `json:"deactivated_products"`
}

// Deactivate is the one place the product cascade happens, and it is one
// transaction: if the bulk update fails, the profile flag flip rolls back
// too. Active → Inactive is terminal; there is no re-activation.
// Historical orders and order items are never touched.
func (u *ArtisanUsecase) Deactivate(ctx context.Context, userID int64) (DeactivateOutput, error) {
	if userID <= 0 {
		return DeactivateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out DeactivateOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		a, err := r.Artisans().FindByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return ErrNotArtisan
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Artisans().Deactivate(ctx, a.ID); err != nil {
			return ErrCommitFailed
		}

		count, err := r.Products().BulkDeactivateByArtisan(ctx, a.ID)
		if err != nil {
			return ErrCommitFailed
		}

		out = DeactivateOutput{ArtisanID: a.ID, DeactivatedProducts: count}
		return nil
	})

	if err != nil {
		return DeactivateOutput{}, err
	}
	return out, nil
}

type ArtisanPublicOutput struct {
	Artisan       model.ArtisanProfile   `json:"artisan"`
	Products      []model.Product        `json:"products"`
	OtherArtisans []model.ArtisanProfile `json:"other_artisans"`
}

// Public artisan page. Deactivated artisans are not shown.
func (u *ArtisanUsecase) GetPublicProfile(ctx context.Context, artisanID int64) (ArtisanPublicOutput, error) {
	if artisanID <= 0 {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := u.artisans.FindByID(ctx, artisanID)
	if err == repo.ErrNotFound {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !a.IsActive {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	products, err := u.products.ListByArtisan(ctx, a.ID, true)
	if err != nil {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	others, err := u.artisans.ListActive(ctx, 8, a.ID)
	if err != nil {
		return ArtisanPublicOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ArtisanPublicOutput{
		Artisan:       a,
		Products:      products,
		OtherArtisans: others,
	}, nil
}
