package trainlookup

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-autofill/internal/config"
	"train-autofill/internal/core/domain"
	ports "train-autofill/internal/core/ports/output"
	"train-autofill/internal/testutil"
)

func setupClient(t *testing.T) (*testutil.Collaborator, ports.TrainNameClient) {
	collab := testutil.NewCollaborator()
	srv := collab.Start(t)
	client := NewTrainLookupClient(&config.LookupConfig{URL: srv.URL + "/"})
	return collab, client
}

func TestLookupTrainName_Found(t *testing.T) {
	collab, client := setupClient(t)
	collab.SetTrain("12951", "Mumbai Rajdhani")

	result, err := client.LookupTrainName(context.Background(), "12951")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "12951", result.TrainNumber)
	assert.Equal(t, "Mumbai Rajdhani", result.TrainName)
	assert.Equal(t, []string{"12951"}, collab.Requests())
}

func TestLookupTrainName_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty name", `{"train_name":""}`},
		{"null name", `{"train_name":null}`},
		{"unrelated fields", `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collab, client := setupClient(t)
			collab.SetResponse("99999", http.StatusOK, tt.body)

			result, err := client.LookupTrainName(context.Background(), "99999")
			require.NoError(t, err)
			assert.False(t, result.Found)
			assert.Empty(t, result.TrainName)
			assert.Equal(t, domain.TrainNotFoundText, result.DisplayText())
		})
	}
}

func TestLookupTrainName_UnknownNumber(t *testing.T) {
	_, client := setupClient(t)

	result, err := client.LookupTrainName(context.Background(), "00000")
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestLookupTrainName_ServerError(t *testing.T) {
	collab, client := setupClient(t)
	collab.SetResponse("12951", http.StatusInternalServerError, `{"train_name":"Mumbai Rajdhani"}`)

	_, err := client.LookupTrainName(context.Background(), "12951")
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}

func TestLookupTrainName_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html", `<html>oops</html>`},
		{"truncated", `{"train_name":`},
		{"wrong type", `{"train_name":12951}`},
		{"trailing garbage", `{"train_name":"Mumbai Rajdhani"}<html>oops</html>`},
		{"second object", `{"train_name":"Mumbai Rajdhani"}{}`},
		{"null body", `null`},
		{"array body", `[]`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collab, client := setupClient(t)
			collab.SetResponse("12951", http.StatusOK, tt.body)

			_, err := client.LookupTrainName(context.Background(), "12951")
			assert.ErrorIs(t, err, domain.ErrLookupFailed)
		})
	}
}

func TestLookupTrainName_ConnectionRefused(t *testing.T) {
	collab := testutil.NewCollaborator()
	srv := collab.Start(t)
	url := srv.URL
	srv.Close()

	client := NewTrainLookupClient(&config.LookupConfig{URL: url})

	_, err := client.LookupTrainName(context.Background(), "12951")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestLookupTrainName_EncodesQuery(t *testing.T) {
	collab, client := setupClient(t)
	collab.SetTrain("12 951&x=1", "Odd Express")

	result, err := client.LookupTrainName(context.Background(), "12 951&x=1")
	require.NoError(t, err)
	assert.Equal(t, "Odd Express", result.TrainName)
	assert.Equal(t, []string{"12 951&x=1"}, collab.Requests())
}

func TestLookupTrainName_SendsRequestID(t *testing.T) {
	collab, client := setupClient(t)

	_, err := client.LookupTrainName(context.Background(), "12951")
	require.NoError(t, err)
	_, err = client.LookupTrainName(context.Background(), "12951")
	require.NoError(t, err)

	ids := collab.RequestIDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestLookupTrainName_EmptyNumber(t *testing.T) {
	collab, client := setupClient(t)

	_, err := client.LookupTrainName(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyTrainNumber)
	assert.Empty(t, collab.Requests())
}

func TestLookupTrainName_ContextCanceled(t *testing.T) {
	collab, client := setupClient(t)
	release := collab.Hold("12951")
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.LookupTrainName(ctx, "12951")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
