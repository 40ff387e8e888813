// internal/upload/scope.go

// Package upload defines the typed upload scopes that replace the free-form
// metadata blobs of upload requests. Each scope variant is validated at the
// boundary before any authorization or persistence happens.
package upload

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/domain"
)

type Kind string

const (
	KindJobFile       Kind = "job.fileupload"
	KindGroupFile     Kind = "group.fileupload"
	KindResourceImage Kind = "shop.resource.image"
	KindMaterialMSDS  Kind = "material.msds"
	KindMaterialTDS   Kind = "material.tds"
	KindMaterialImage Kind = "material.image"
	KindShopLogo      Kind = "shop.logo"
)

// Scope is a validated upload target.
type Scope interface {
	Kind() Kind
	Validate() error
}

// JobFileUpload attaches a file to a job as a new job item.
type JobFileUpload struct {
	ShopID uuid.UUID `json:"shop_id"`
	JobID  uuid.UUID `json:"job_id"`
}

func (JobFileUpload) Kind() Kind { return KindJobFile }

func (s JobFileUpload) Validate() error {
	if s.ShopID == uuid.Nil || s.JobID == uuid.Nil {
		return fmt.Errorf("%w: job file upload requires shop_id and job_id", domain.ErrInvalidInput)
	}
	return nil
}

// GroupFileUpload attaches a file to a job owned by a billing group.
type GroupFileUpload struct {
	GroupID uuid.UUID `json:"group_id"`
	JobID   uuid.UUID `json:"job_id"`
}

func (GroupFileUpload) Kind() Kind { return KindGroupFile }

func (s GroupFileUpload) Validate() error {
	if s.GroupID == uuid.Nil || s.JobID == uuid.Nil {
		return fmt.Errorf("%w: group file upload requires group_id and job_id", domain.ErrInvalidInput)
	}
	return nil
}

// ResourceImage attaches an image to a production resource.
type ResourceImage struct {
	ShopID     uuid.UUID `json:"shop_id"`
	ResourceID uuid.UUID `json:"resource_id"`
}

func (ResourceImage) Kind() Kind { return KindResourceImage }

func (s ResourceImage) Validate() error {
	if s.ShopID == uuid.Nil || s.ResourceID == uuid.Nil {
		return fmt.Errorf("%w: resource image requires shop_id and resource_id", domain.ErrInvalidInput)
	}
	return nil
}

// AssetKind distinguishes the material document variants.
type AssetKind string

const (
	AssetMSDS  AssetKind = "msds"
	AssetTDS   AssetKind = "tds"
	AssetImage AssetKind = "image"
)

// MaterialAsset attaches a datasheet or image to a material.
type MaterialAsset struct {
	MaterialID uuid.UUID `json:"material_id"`
	Asset      AssetKind `json:"-"`
}

func (s MaterialAsset) Kind() Kind {
	switch s.Asset {
	case AssetTDS:
		return KindMaterialTDS
	case AssetImage:
		return KindMaterialImage
	default:
		return KindMaterialMSDS
	}
}

func (s MaterialAsset) Validate() error {
	if s.MaterialID == uuid.Nil {
		return fmt.Errorf("%w: material asset requires material_id", domain.ErrInvalidInput)
	}
	return nil
}

// ShopLogo replaces a shop's logo.
type ShopLogo struct {
	ShopID uuid.UUID `json:"shop_id"`
}

func (ShopLogo) Kind() Kind { return KindShopLogo }

func (s ShopLogo) Validate() error {
	if s.ShopID == uuid.Nil {
		return fmt.Errorf("%w: shop logo requires shop_id", domain.ErrInvalidInput)
	}
	return nil
}

// ParseScope decodes the scope name and metadata payload of an upload
// request into a validated Scope variant.
func ParseScope(name string, metadata []byte) (Scope, error) {
	var (
		scope Scope
		err   error
	)

	switch Kind(name) {
	case KindJobFile:
		var s JobFileUpload
		err = json.Unmarshal(metadata, &s)
		scope = s
	case KindGroupFile:
		var s GroupFileUpload
		err = json.Unmarshal(metadata, &s)
		scope = s
	case KindResourceImage:
		var s ResourceImage
		err = json.Unmarshal(metadata, &s)
		scope = s
	case KindMaterialMSDS, KindMaterialTDS, KindMaterialImage:
		var s MaterialAsset
		err = json.Unmarshal(metadata, &s)
		switch Kind(name) {
		case KindMaterialTDS:
			s.Asset = AssetTDS
		case KindMaterialImage:
			s.Asset = AssetImage
		default:
			s.Asset = AssetMSDS
		}
		scope = s
	case KindShopLogo:
		var s ShopLogo
		err = json.Unmarshal(metadata, &s)
		scope = s
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownUploadScope, name)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: decoding upload metadata: %v", domain.ErrInvalidInput, err)
	}

	if err := scope.Validate(); err != nil {
		return nil, err
	}

	return scope, nil
}
