package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
)

func TestFoodSaveImagePrefixesTimestamp(t *testing.T) {
	disk := newFakeDisk()
	svc := NewFoodService(newFakeCatalog(), disk)

	filename, err := svc.SaveImage("pizza.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, "-pizza.png"))
	assert.NotEqual(t, "pizza.png", filename)
	assert.Equal(t, []byte("png-bytes"), disk.files["images/"+filename])
}

func TestFoodSaveImageStripsDirectories(t *testing.T) {
	disk := newFakeDisk()
	svc := NewFoodService(newFakeCatalog(), disk)

	filename, err := svc.SaveImage("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, filename, "/")
	assert.Contains(t, disk.files, "images/"+filename)
}

func TestFoodAddAndList(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewFoodService(catalog, newFakeDisk())

	food := &models.Food{
		Name: "Greek Salad", Description: "Fresh", Price: 120,
		Category: "Salad", Image: "1-greek.png",
	}
	require.NoError(t, svc.Add(context.Background(), food))
	assert.False(t, food.ID.IsZero())

	foods, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Greek Salad", foods[0].Name)
}

func TestFoodRemoveDeletesRecordAndImage(t *testing.T) {
	catalog := newFakeCatalog()
	disk := newFakeDisk()
	svc := NewFoodService(catalog, disk)

	food := &models.Food{Name: "Cup Cake", Price: 100, Category: "Cake", Image: "1-cake.png"}
	require.NoError(t, svc.Add(context.Background(), food))
	require.NoError(t, disk.Put("images/1-cake.png", []byte("img")))

	require.NoError(t, svc.Remove(context.Background(), food.ID.Hex()))
	assert.Empty(t, catalog.foods)
	assert.Equal(t, []string{"images/1-cake.png"}, disk.deleted)
}

func TestFoodRemoveSurvivesMissingImage(t *testing.T) {
	catalog := newFakeCatalog()
	disk := newFakeDisk()
	disk.delErr = errors.New("file does not exist")
	svc := NewFoodService(catalog, disk)

	food := &models.Food{Name: "Cup Cake", Price: 100, Category: "Cake", Image: "gone.png"}
	require.NoError(t, svc.Add(context.Background(), food))

	// The record delete must win even when the image is already gone.
	require.NoError(t, svc.Remove(context.Background(), food.ID.Hex()))
	assert.Empty(t, catalog.foods)
}

func TestFoodRemoveUnknownID(t *testing.T) {
	svc := NewFoodService(newFakeCatalog(), newFakeDisk())

	err := svc.Remove(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
