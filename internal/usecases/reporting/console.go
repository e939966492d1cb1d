package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/pkg/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separatorWidth = 50

// LabelCase converte o nome do indicador para exibição, ex: total_revenue -> Total Revenue
func LabelCase(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, "🚀 ShopHub Analytics Engine Starting...")
	fmt.Fprintln(w, strings.Repeat("=", separatorWidth))
}

func printKPIs(w io.Writer, kpis *domain.KPISet) {
	fmt.Fprintln(w, "📊 Key Performance Indicators:")
	for _, entry := range kpis.Entries() {
		fmt.Fprintf(w, "   %s: %s\n", LabelCase(entry.Name), entry.Value)
	}
}

func printInsights(w io.Writer, insights []string) {
	fmt.Fprintln(w, "\n💡 Business Insights:")
	for i, insight := range insights {
		fmt.Fprintf(w, "   %d. %s\n", i+1, insight)
	}
}

func printFooter(w io.Writer, completedAt time.Time) {
	fmt.Fprintf(w, "\n✅ Analytics processing completed at %s\n", utils.FormatDateTime(completedAt))
	fmt.Fprintln(w, "🔗 Data ready for PowerBI/Tableau integration")
}
