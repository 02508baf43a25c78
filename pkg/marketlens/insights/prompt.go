package insights

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BusinessInsightsPrompt builds the report prompt for an analysis result.
func BusinessInsightsPrompt(data any, focusBrand string) (string, error) {
	payload, err := indentJSON(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a senior business analyst. Analyze the following market data and write business insights for %s.\n\n", focusBrand)
	fmt.Fprintf(&b, "Data Analysis Results:\n%s\n\n", payload)
	fmt.Fprintf(&b, "Focus Brand: %s\n\n", focusBrand)
	b.WriteString("Write a business intelligence report in markdown with these sections:\n\n")
	for i, section := range []string{
		"**Executive Summary** - key findings and strategic recommendations",
		fmt.Sprintf("**Market Position Analysis** - how %s compares to competitors", focusBrand),
		"**Regional Performance** - geographic strengths and opportunities",
		"**Distribution Analysis** - channel effectiveness and availability",
		"**Competitive Landscape** - main competitors and market dynamics",
		"**Strategic Recommendations** - specific, actionable steps",
		"**Risk Assessment** - likely challenges and mitigations",
	} {
		fmt.Fprintf(&b, "%d. %s\n", i+1, section)
	}
	b.WriteString("\nGuidelines:\n")
	b.WriteString("- Use ONLY the data provided; do not invent figures\n")
	fmt.Fprintf(&b, "- Highlight %s performance specifically\n", focusBrand)
	b.WriteString("- Quantify insights where the data allows\n")
	b.WriteString("- Compare against competitors where relevant\n")
	b.WriteString("- Use clear, professional language with markdown headers and bullet points\n")
	return b.String(), nil
}

// ChartInsightsPrompt builds a prompt explaining one chart.
func ChartInsightsPrompt(chartData any, chartType, focusBrand string) (string, error) {
	payload, err := indentJSON(chartData)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "As a data visualization expert, explain this %s chart in business terms.\n\n", chartType)
	fmt.Fprintf(&b, "Chart Data: %s\nChart Type: %s\nFocus Brand: %s\n\n", payload, chartType, focusBrand)
	b.WriteString("Cover:\n")
	b.WriteString("1. What the chart shows\n")
	b.WriteString("2. Key patterns or trends\n")
	fmt.Fprintf(&b, "3. How %s performs relative to others\n", focusBrand)
	b.WriteString("4. Which business decisions the data supports\n")
	b.WriteString("5. Notable insights or anomalies\n\n")
	b.WriteString("Keep it concise and suitable for business stakeholders.\n")
	return b.String(), nil
}

// QuestionPrompt builds a prompt answering a business question from data.
func QuestionPrompt(question string, dataContext any, focusBrand string) (string, error) {
	payload, err := indentJSON(dataContext)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Answer this business question using the data provided.\n\n")
	fmt.Fprintf(&b, "Question: %s\nFocus Brand: %s\nData Context: %s\n\n", question, focusBrand, payload)
	b.WriteString("The answer should:\n")
	b.WriteString("1. Address the question directly\n")
	b.WriteString("2. Cite specific metrics from the data\n")
	b.WriteString("3. Explain context and implications\n")
	b.WriteString("4. Suggest follow-up actions if relevant\n\n")
	b.WriteString("Base the answer strictly on the data. If it cannot fully answer the question, say what additional information is needed.\n")
	return b.String(), nil
}

func indentJSON(v any) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode prompt data: %w", err)
	}
	return string(raw), nil
}
