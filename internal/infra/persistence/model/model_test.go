package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Receipts carry a unique identity index and alerts a unique dedupe index.
// A soft-delete column on either table would leave tombstones holding those
// index slots: a deleted receipt could never be re-uploaded, and a recreated
// alert would hit a conflict whose winner row is invisible behind the delete
// scope. Deletes on these tables stay physical.
func TestReceiptRowsDeletePhysically(t *testing.T) {
	_, hasSoftDelete := reflect.TypeOf(ReceiptModel{}).FieldByName("DeletedAt")
	assert.False(t, hasSoftDelete,
		"a soft-deleted receipt would hold the identity index slot and block re-uploads forever")
}

func TestAlertRowsDeletePhysically(t *testing.T) {
	_, hasSoftDelete := reflect.TypeOf(PriceAdjustmentAlertModel{}).FieldByName("DeletedAt")
	assert.False(t, hasSoftDelete,
		"a soft-deleted alert would hold the dedupe index slot and break upsert recovery")
}
