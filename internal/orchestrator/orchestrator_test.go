package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muambr/fashionscrape/internal/merge"
	"github.com/muambr/fashionscrape/models"
)

func completePayload() map[string]interface{} {
	return map[string]interface{}{
		"product_name": "Denim Jacket",
		"brand":        "Acme",
		"garment_type": string(models.GarmentUpper),
		"price":        map[string]interface{}{"amount": float64(89), "currency": "USD"},
		"image_urls":   []interface{}{"https://cdn.example.com/a.jpg"},
	}
}

func TestRunCompletionLoopStopsImmediatelyOnStrongSource(t *testing.T) {
	state := merge.New()
	state.Merge("curlcffi_gemini", completePayload())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	record := runCompletionLoop(ctx, state)
	elapsed := time.Since(start)

	require.NotNil(t, record.ProductName)
	assert.Equal(t, "Denim Jacket", *record.ProductName)
	assert.Less(t, elapsed, softCompletionDeadline)
}

func TestRunCompletionLoopWaitsOutSoftDeadlineWithoutStrongSource(t *testing.T) {
	state := merge.New()
	state.Merge("serpapi_images_url", completePayload())

	ctx, cancel := context.WithTimeout(context.Background(), softCompletionDeadline+2*time.Second)
	defer cancel()

	start := time.Now()
	record := runCompletionLoop(ctx, state)
	elapsed := time.Since(start)

	require.NotNil(t, record.ProductName)
	assert.GreaterOrEqual(t, elapsed, softCompletionDeadline)
}

func TestRunCompletionLoopReturnsOnContextDeadlineWhenNeverComplete(t *testing.T) {
	state := merge.New()
	state.Merge("serpapi_images_url", map[string]interface{}{"product_name": "Incomplete Item"})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	record := runCompletionLoop(ctx, state)
	require.NotNil(t, record.ProductName)
	assert.Equal(t, "Incomplete Item", *record.ProductName)
	assert.Nil(t, record.Brand)
}

func TestValidateRejectsUnsupportedGarmentType(t *testing.T) {
	gt := models.GarmentUnsupported
	record := models.ProductRecord{GarmentType: &gt}

	_, err := validate(record, "https://example.com/p")
	require.Error(t, err)

	var notFashion *models.NotFashionProductError
	assert.ErrorAs(t, err, &notFashion)
	assert.Equal(t, "https://example.com/p", notFashion.URL)
}

func TestValidateRejectsMissingGarmentType(t *testing.T) {
	record := models.ProductRecord{}

	_, err := validate(record, "https://example.com/p")
	require.Error(t, err)

	var unsupported *models.UnsupportedProductError
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "https://example.com/p", unsupported.URL)
}

func TestValidateRejectsOtherGarmentType(t *testing.T) {
	gt := models.GarmentOther
	record := models.ProductRecord{GarmentType: &gt}

	_, err := validate(record, "https://example.com/p")
	require.Error(t, err)

	var unsupported *models.UnsupportedProductError
	assert.ErrorAs(t, err, &unsupported)
}

func TestValidateAcceptsSupportedGarmentTypes(t *testing.T) {
	for _, gt := range []models.GarmentType{
		models.GarmentUpper, models.GarmentLower, models.GarmentFullBody, models.GarmentShoes,
	} {
		gt := gt
		record := models.ProductRecord{GarmentType: &gt}
		out, err := validate(record, "https://example.com/p")
		require.NoError(t, err)
		assert.Equal(t, gt, *out.GarmentType)
	}
}
