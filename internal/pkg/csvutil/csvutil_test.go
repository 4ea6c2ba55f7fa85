package csvutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	ID      int64  `csv:"ID"`
	Name    string `csv:"Nama"`
	Address string `csv:"Alamat"`
}

func TestWrite_QuotesOnlyWhenNeeded(t *testing.T) {
	rows := []testRow{
		{ID: 1, Name: "Andi Setiawan", Address: "Jl. Merdeka, No. 1"},
		{ID: 2, Name: "Siti Aminah", Address: "Jl. Sudirman 2"},
	}

	var buf bytes.Buffer
	err := Write(&buf, rows)
	assert.NoError(t, err)

	out := buf.String()
	assert.Equal(t,
		"ID,Nama,Alamat\r\n"+
			"1,Andi Setiawan,\"Jl. Merdeka, No. 1\"\r\n"+
			"2,Siti Aminah,Jl. Sudirman 2\r\n",
		out)
}

func TestWrite_EscapesEmbeddedQuotes(t *testing.T) {
	rows := []testRow{
		{ID: 1, Name: `Toko "Jaya"`, Address: "Jakarta"},
	}

	var buf bytes.Buffer
	err := Write(&buf, rows)
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), `"Toko ""Jaya"""`)
}

func TestWrite_EmptySliceStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []testRow{})
	assert.NoError(t, err)
	assert.Equal(t, "ID,Nama,Alamat\r\n", buf.String())
}
