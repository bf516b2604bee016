package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"

	"github.com/m-mizutani/gt"
)

// NewRSAKey generates a throwaway RSA key and returns it with its PKCS#8 PEM form.
func NewRSAKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key := gt.R1(rsa.GenerateKey(rand.Reader, 2048)).NoError(t)
	der := gt.R1(x509.MarshalPKCS8PrivateKey(key)).NoError(t)
	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	return key, string(block)
}

// ServiceAccountJSON builds a service account key file around pemKey.
func ServiceAccountJSON(t *testing.T, pemKey string) []byte {
	t.Helper()

	return gt.R1(json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   "ska-dan-test",
		"client_email": "push@ska-dan-test.iam.gserviceaccount.com",
		"private_key":  pemKey,
	})).NoError(t)
}
