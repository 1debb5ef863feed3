package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type cannedResponse struct {
	status int
	body   string
}

// Collaborator is a fake /get_train_name endpoint.
// Unknown train numbers answer {"train_name": null}.
type Collaborator struct {
	mu         sync.Mutex
	responses  map[string]cannedResponse
	gates      map[string]chan struct{}
	requests   []string
	requestIDs []string
	engine     *gin.Engine
}

func NewCollaborator() *Collaborator {
	gin.SetMode(gin.TestMode)

	c := &Collaborator{
		responses: make(map[string]cannedResponse),
		gates:     make(map[string]chan struct{}),
		engine:    gin.New(),
	}
	c.engine.GET("/get_train_name", c.getTrainName)
	return c
}

// Start serves the collaborator until the test ends.
func (c *Collaborator) Start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(c.engine)
	t.Cleanup(srv.Close)
	return srv
}

func (c *Collaborator) SetTrain(trainNumber, trainName string) {
	body, _ := json.Marshal(gin.H{"train_name": trainName})
	c.SetResponse(trainNumber, http.StatusOK, string(body))
}

// SetResponse answers trainNumber with a raw body.
func (c *Collaborator) SetResponse(trainNumber string, status int, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[trainNumber] = cannedResponse{status: status, body: body}
}

// Hold stalls responses for trainNumber until the returned release is called.
func (c *Collaborator) Hold(trainNumber string) (release func()) {
	gate := make(chan struct{})
	c.mu.Lock()
	c.gates[trainNumber] = gate
	c.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Requests lists received train numbers in arrival order.
func (c *Collaborator) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

func (c *Collaborator) RequestIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requestIDs...)
}

func (c *Collaborator) getTrainName(ctx *gin.Context) {
	trainNumber := ctx.Query("train_number")

	c.mu.Lock()
	c.requests = append(c.requests, trainNumber)
	c.requestIDs = append(c.requestIDs, ctx.GetHeader("X-Request-ID"))
	resp, ok := c.responses[trainNumber]
	gate := c.gates[trainNumber]
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Request.Context().Done():
			return
		}
	}

	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"train_name": nil})
		return
	}
	ctx.Data(resp.status, "application/json", []byte(resp.body))
}
