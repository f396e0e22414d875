package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"salescli/pkg/contracts/domain"
)

const deliverablesText = `1. Comprehensive analysis report summarizing key findings, insights, and recommendations.
2. Visualizations (charts, graphs) illustrating various aspects of the data analysis.
3. Insights on product preferences, customer behaviour, and geographical sales distribution.
4. Recommendations for improving sales strategies, inventory management, and customer service.`

const keyInsightsText = `- Sales show strong seasonal peaks, aligning with major promotional events.
- Few categories dominate sales, suggesting focused marketing yields high returns.
- Fulfillment methods like FBA (Fulfilled by Amazon) improve delivery performance.
- Certain states exhibit strong demand concentration.`

const recommendationsText = `1. Focus marketing budgets on top regions and categories.
2. Expand inventory for high-performing products.
3. Streamline logistics in low-performing states to reduce costs.
4. Use predictive analytics to anticipate demand during festival seasons.`

const conclusionText = `This analysis reveals significant patterns in the sales data: revenue trends, customer preferences, and regional performance. The findings support data-driven strategic decisions aimed at improving efficiency and profitability. By implementing the proposed recommendations, the business can strengthen its competitive advantage, enhance customer satisfaction, and ensure sustainable growth.`

// executiveSummary parameterizes the summary paragraph with the
// analyzed date range.
func executiveSummary(metrics domain.SalesMetrics) string {
	return fmt.Sprintf(
		"This report analyzes sales data from %s to %s. It explores trends in revenue, "+
			"product categories, fulfillment efficiency, and geographical performance. "+
			"Insights derived from this analysis aim to help optimize sales strategies, "+
			"improve customer experience, and drive sustained revenue growth.",
		metrics.DateMin.Format("02 Jan 2006"),
		metrics.DateMax.Format("02 Jan 2006"))
}

// formatCurrency renders a monetary value with two fixed decimals.
func formatCurrency(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
