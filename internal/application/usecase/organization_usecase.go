package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/organization"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/jhoicas/Axioma-api/pkg/validate"
)

// MaxLogoBytes tamaño máximo del logo (2 MiB).
const MaxLogoBytes = 2 << 20

var allowedLogoTypes = []string{"image/png", "image/jpeg"}

// OnboardingTxRunner transacción de alta de organización.
type OnboardingTxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		orgRepo repository.OrganizationRepository,
		membershipRepo repository.MembershipRepository,
	) error) error
}

// OrganizationUseCase onboarding y ajustes de la organización.
type OrganizationUseCase struct {
	txRunner       OnboardingTxRunner
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	storage        ports.LogoStorage
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(
	txRunner OnboardingTxRunner,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	storage ports.LogoStorage,
) *OrganizationUseCase {
	return &OrganizationUseCase{
		txRunner:       txRunner,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		storage:        storage,
	}
}

// CreateOrganization crea la organización y la membresía OWNER del usuario en una transacción.
// Si no se envía slug se deriva del nombre. Slug ocupado -> ErrDuplicate.
func (uc *OrganizationUseCase) CreateOrganization(ctx context.Context, userID string, in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	in.TaxID = strings.ToUpper(strings.TrimSpace(in.TaxID))
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	slug := in.Slug
	if slug == "" {
		slug = organization.Slugify(in.Name)
	}
	if !organization.ValidSlug(slug) {
		return nil, domain.NewValidationError("slug", "solo minúsculas, números y guiones (mínimo 3)")
	}

	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Slug:      slug,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunOnboarding(ctx, func(
		userRepo repository.UserRepository,
		orgRepo repository.OrganizationRepository,
		membershipRepo repository.MembershipRepository,
	) error {
		if err := userRepo.EnsureExists(ctx, userID); err != nil {
			return err
		}
		if err := orgRepo.Create(ctx, org); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("%w: el slug %q ya está en uso", domain.ErrDuplicate, slug)
			}
			return err
		}
		return membershipRepo.Create(ctx, &entity.Membership{
			ID:             uuid.New().String(),
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           entity.RoleOwner,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetOrganization datos de la organización activa.
func (uc *OrganizationUseCase) GetOrganization(ctx context.Context, tc tenant.Context) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return toOrganizationResponse(org), nil
}

// UpdateOrganization solo OWNER/ADMIN.
func (uc *OrganizationUseCase) UpdateOrganization(ctx context.Context, tc tenant.Context, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if !tc.CanManage() {
		return nil, domain.ErrForbidden
	}
	if in.TaxID != nil {
		v := strings.ToUpper(strings.TrimSpace(*in.TaxID))
		in.TaxID = &v
	}
	if fields := validate.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	org, err := uc.orgRepo.GetByID(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		org.Name = strings.TrimSpace(*in.Name)
	}
	if in.Slug != nil {
		org.Slug = *in.Slug
	}
	if in.TaxID != nil {
		org.TaxID = *in.TaxID
	}
	if in.Address != nil {
		org.Address = *in.Address
	}
	if in.Phone != nil {
		org.Phone = *in.Phone
	}
	if in.Website != nil {
		org.Website = *in.Website
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// UploadLogo valida tamaño y tipo real del archivo, lo sube al almacenamiento y guarda la URL pública.
func (uc *OrganizationUseCase) UploadLogo(ctx context.Context, tc tenant.Context, in dto.UploadLogoRequest) (*dto.OrganizationResponse, error) {
	if !tc.CanManage() {
		return nil, domain.ErrForbidden
	}
	if len(in.Data) == 0 {
		return nil, domain.NewValidationError("logo", "es obligatorio")
	}
	if len(in.Data) > MaxLogoBytes {
		return nil, domain.NewValidationError("logo", "el archivo supera 2 MB")
	}
	mt := mimetype.Detect(in.Data)
	if !mimetype.EqualsAny(mt.String(), allowedLogoTypes...) {
		return nil, domain.NewValidationError("logo", "solo se permiten imágenes PNG o JPEG")
	}

	key := fmt.Sprintf("%s/logo-%d%s", tc.OrganizationID, time.Now().Unix(), mt.Extension())
	url, err := uc.storage.Upload(ctx, key, mt.String(), in.Data)
	if err != nil {
		return nil, fmt.Errorf("organization: subir logo: %w", err)
	}
	if err := uc.orgRepo.UpdateLogo(ctx, tc.OrganizationID, url); err != nil {
		return nil, err
	}
	return uc.GetOrganization(ctx, tc)
}

// ListMembers miembros de la organización activa.
func (uc *OrganizationUseCase) ListMembers(ctx context.Context, tc tenant.Context) ([]dto.MemberResponse, error) {
	list, err := uc.membershipRepo.ListByOrganization(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MemberResponse{
			UserID:   m.UserID,
			Email:    m.UserEmail,
			FullName: m.UserFullName,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// ListMyOrganizations organizaciones del usuario (no requiere organización activa).
func (uc *OrganizationUseCase) ListMyOrganizations(ctx context.Context, userID string) ([]dto.MembershipResponse, error) {
	list, err := uc.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MembershipResponse{
			OrganizationID:   m.OrganizationID,
			OrganizationName: m.OrganizationName,
			OrganizationSlug: m.OrganizationSlug,
			Role:             m.Role,
		})
	}
	return out, nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		TaxID:     o.TaxID,
		Address:   o.Address,
		Phone:     o.Phone,
		Website:   o.Website,
		LogoURL:   o.LogoURL,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
