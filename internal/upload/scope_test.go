package upload_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	shopID := uuid.New()
	jobID := uuid.New()
	materialID := uuid.New()

	t.Run("job file upload", func(t *testing.T) {
		metadata := fmt.Sprintf(`{"shop_id":%q,"job_id":%q}`, shopID, jobID)

		scope, err := upload.ParseScope("job.fileupload", []byte(metadata))
		require.NoError(t, err)

		jobScope, ok := scope.(upload.JobFileUpload)
		require.True(t, ok)
		assert.Equal(t, upload.KindJobFile, scope.Kind())
		assert.Equal(t, shopID, jobScope.ShopID)
		assert.Equal(t, jobID, jobScope.JobID)
	})

	t.Run("material asset variants share one payload", func(t *testing.T) {
		metadata := fmt.Sprintf(`{"material_id":%q}`, materialID)

		for name, kind := range map[string]upload.Kind{
			"material.msds":  upload.KindMaterialMSDS,
			"material.tds":   upload.KindMaterialTDS,
			"material.image": upload.KindMaterialImage,
		} {
			scope, err := upload.ParseScope(name, []byte(metadata))
			require.NoError(t, err, name)
			assert.Equal(t, kind, scope.Kind())
		}
	})

	t.Run("shop logo", func(t *testing.T) {
		scope, err := upload.ParseScope("shop.logo", []byte(fmt.Sprintf(`{"shop_id":%q}`, shopID)))
		require.NoError(t, err)
		assert.Equal(t, upload.KindShopLogo, scope.Kind())
	})

	t.Run("unknown scope name", func(t *testing.T) {
		_, err := upload.ParseScope("shop.backup", []byte(`{}`))
		assert.ErrorIs(t, err, domain.ErrUnknownUploadScope)
	})

	t.Run("missing identifiers fail validation", func(t *testing.T) {
		cases := map[string]string{
			"job.fileupload":      fmt.Sprintf(`{"shop_id":%q}`, shopID),
			"group.fileupload":    fmt.Sprintf(`{"job_id":%q}`, jobID),
			"shop.resource.image": `{}`,
			"material.msds":       `{}`,
			"shop.logo":           `{}`,
		}

		for name, metadata := range cases {
			_, err := upload.ParseScope(name, []byte(metadata))
			assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
		}
	})

	t.Run("malformed metadata", func(t *testing.T) {
		_, err := upload.ParseScope("job.fileupload", []byte(`{"shop_id":42}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
