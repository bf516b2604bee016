package logging_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ska-dan/notify/pkg/domain/model"
	"github.com/ska-dan/notify/pkg/utils/logging"
	"github.com/ska-dan/notify/pkg/utils/testutil"
)

func TestRedactSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New(&buf, "debug", "json")).NoError(t)

	logger.Info("push",
		"msg", &model.PushMessage{Token: "device-token-xyz", Title: "Message from Alice"},
		"recipient", model.Recipient{ID: "u2", Name: "Bob", FCMToken: "device-token-abc"},
	)

	out := buf.String()
	gt.S(t, out).Contains("Message from Alice").Contains("Bob")
	gt.S(t, out).NotContains("device-token-xyz").NotContains("device-token-abc")

	data, ok := testutil.DecodeJSON(t, buf.Bytes()).(map[string]any)
	gt.True(t, ok)
	gt.Equal(t, data["level"], any("INFO"))
}

func TestInvalidConfig(t *testing.T) {
	var buf bytes.Buffer

	_, err := logging.New(&buf, "trace", "json")
	gt.Error(t, err)

	_, err = logging.New(&buf, "info", "xml")
	gt.Error(t, err)
}
