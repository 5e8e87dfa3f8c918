package prommetrics

import (
	"strings"
	"testing"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectAll struct{}

func (rejectAll) ValidByte(byte) bool { return false }

func TestCollector_Engine(t *testing.T) {
	col := New(Config{})

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(col))

	alg := catalog.CRC32ISOHDLC
	c := crcgo.New(alg, crcgo.WithMetricsCollector(col.ForAlgorithm(alg.Name)))

	assert.Equal(t, uint32(0xCBF43926), c.Checksum([]byte("123456789")))
	c.Checksum([]byte("1"))

	d := c.Digest()
	d.Update([]byte("hello"))
	d.Finalize()

	assert.Equal(t, 2.0, testutil.ToFloat64(col.checksums.WithLabelValues(alg.Name)))
	assert.Equal(t, 10.0, testutil.ToFloat64(col.checksumBytes.WithLabelValues(alg.Name)))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.digests.WithLabelValues(alg.Name)))
	assert.Equal(t, 5.0, testutil.ToFloat64(col.digestBytes.WithLabelValues(alg.Name)))
	assert.Equal(t, 0.0, testutil.ToFloat64(col.sentinels.WithLabelValues(alg.Name)))

	// Seven metric families, each with one series for this algorithm.
	assert.Equal(t, 7, testutil.CollectAndCount(col))
}

func TestCollector_Sentinel(t *testing.T) {
	col := New(Config{Namespace: "test"})

	alg := catalog.CRC16ARC
	c := crcgo.New(alg,
		crcgo.WithMetricsCollector(col.ForAlgorithm(alg.Name)),
		crcgo.WithByteValidator(rejectAll{}),
	)
	c.Checksum([]byte("x"))

	assert.Equal(t, 1.0, testutil.ToFloat64(col.sentinels.WithLabelValues(alg.Name)))
}

func TestCollector_Exposition(t *testing.T) {
	col := New(Config{ConstLabels: prometheus.Labels{"service": "crcsum"}})
	col.ForAlgorithm("CRC-32/ISCSI").RecordDigest(42)

	expected := `
# HELP crcgo_digest_bytes_total Total bytes consumed by finalized digests
# TYPE crcgo_digest_bytes_total counter
crcgo_digest_bytes_total{algorithm="CRC-32/ISCSI",service="crcsum"} 42
`
	err := testutil.CollectAndCompare(col, strings.NewReader(expected), "crcgo_digest_bytes_total")
	assert.NoError(t, err)
}

func TestCollector_MultipleAlgorithms(t *testing.T) {
	col := New(Config{})

	for _, alg := range []*crcgo.Algorithm{catalog.CRC32ISOHDLC, catalog.CRC32ISCSI} {
		crcgo.New(alg, crcgo.WithMetricsCollector(col.ForAlgorithm(alg.Name)))
	}

	assert.Equal(t, 2, testutil.CollectAndCount(col, "crcgo_table_build_duration_seconds"))
}
