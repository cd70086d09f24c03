package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGroupByTypePreservesInsertionOrder(t *testing.T) {
	at := time.Date(2023, 5, 1, 13, 0, 0, 0, time.UTC)
	doc := Document{
		UserID: "user-1",
		Entries: []Entry{
			{ID: "a", Type: "water", Message: "first glass", At: at, Repeat: RepeatNone},
			{ID: "b", Type: "medication", Message: "vitamin d", At: at, Repeat: RepeatDaily},
			{ID: "c", Type: "water", Message: "second glass", At: at, Repeat: RepeatNone},
		},
	}

	grouped := doc.GroupByType()

	assert := require.New(t)
	assert.Len(grouped, 2)
	assert.Len(grouped["water"], 2)
	assert.Equal(EntryID("a"), grouped["water"][0].ID)
	assert.Equal(EntryID("c"), grouped["water"][1].ID)
	assert.Len(grouped["medication"], 1)
	assert.Equal(EntryID("b"), grouped["medication"][0].ID)
}

func TestEntryValidate(t *testing.T) {
	at := time.Date(2023, 5, 1, 13, 0, 0, 0, time.UTC)
	valid := Entry{ID: NewEntryID(), Type: "water", Title: "Hydrate", At: at, Repeat: RepeatNone}

	assert := require.New(t)
	assert.Nil(valid.Validate())

	missingType := valid
	missingType.Type = ""
	assert.NotNil(missingType.Validate())

	badRepeat := valid
	badRepeat.Repeat = RepeatUnknown
	assert.ErrorIs(badRepeat.Validate(), ErrParseRepeat)

	local := valid
	local.At = at.In(time.FixedZone("IST", 19800))
	assert.ErrorIs(local.Validate(), ErrEntryTimeIsNotUTC)
}
