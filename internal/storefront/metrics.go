package storefront

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	ProductsLoaded prometheus.Gauge
	LoadErrors     *prometheus.CounterVec
	Sessions       prometheus.GaugeFunc
}

// NewMetrics registers the catalog and session metrics. sessions reports
// the live session count at scrape time.
func NewMetrics(reg prometheus.Registerer, sessions func() float64) *Metrics {
	m := &Metrics{
		ProductsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products_loaded",
			Help: "Products held in memory after the catalog load",
		}),
		LoadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_load_errors_total",
				Help: "Failed catalog loads by reason",
			},
			[]string{"reason"},
		),
		Sessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "storefront_sessions",
			Help: "Live wishlist/cart sessions",
		}, sessions),
	}

	reg.MustRegister(m.ProductsLoaded, m.LoadErrors, m.Sessions)
	return m
}

func (m *Metrics) loaded(n int) {
	if m == nil {
		return
	}
	m.ProductsLoaded.Set(float64(n))
}

func (m *Metrics) loadFailed(reason string) {
	if m == nil {
		return
	}
	m.LoadErrors.WithLabelValues(reason).Inc()
}
