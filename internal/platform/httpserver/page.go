package httpserver

import "net/http"

func (s *Server) handleDashboardPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dashboardPage))
}

// dashboardPage is the single-page dashboard shell. All data comes from
// the JSON API; figures render client-side with plotly.js.
const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tensio</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; color: #222; }
header { display: flex; align-items: baseline; gap: 1rem; padding: 1rem 2rem; border-bottom: 1px solid #ddd; }
header h1 { margin: 0; font-size: 1.4rem; }
header .actions { margin-left: auto; display: flex; gap: 0.5rem; }
button { padding: 0.4rem 0.9rem; border: 1px solid #888; border-radius: 6px; background: #fff; cursor: pointer; }
button:hover { background: #f0f0f0; }
main { padding: 1rem 2rem; max-width: 1200px; margin: 0 auto; }
.kpis { display: flex; gap: 1.5rem; margin: 1rem 0; flex-wrap: wrap; }
.kpi { background: #f5f5f5; border-radius: 8px; padding: 0.8rem 1.2rem; min-width: 9rem; }
.kpi .value { font-size: 1.4rem; font-weight: 600; }
.kpi .label { color: #666; font-size: 0.8rem; }
nav.tabs { display: flex; gap: 0.3rem; flex-wrap: wrap; margin: 1rem 0; }
nav.tabs button.active { background: #2a6fdb; color: #fff; border-color: #2a6fdb; }
#chart { min-height: 480px; }
#status { color: #666; font-size: 0.85rem; }
#status .stale { color: #b00; }
</style>
</head>
<body>
<header>
  <h1>Tensio</h1>
  <span id="status"></span>
  <div class="actions">
    <button id="refresh">Refresh data</button>
    <button id="export">Export report</button>
  </div>
</header>
<main>
  <div class="kpis" id="kpis"></div>
  <nav class="tabs" id="tabs"></nav>
  <div id="chart"></div>
</main>
<script>
const chartTitles = {
  trend: "Trend", circadian: "Circadian", correlation: "Correlation",
  heatmap: "Heatmap", histogram: "Histogram", matrix: "Matrix",
  categories: "Categories", comparison: "Comparison",
  hemodynamics: "Hemodynamics", pie: "Share"
};
let current = "trend";

async function getJSON(url, options) {
  const res = await fetch(url, options);
  const body = await res.json();
  if (!res.ok) throw new Error(body.message || res.statusText);
  return body;
}

function kpi(value, label) {
  return '<div class="kpi"><div class="value">' + value + '</div><div class="label">' + label + "</div></div>";
}

async function loadSummary() {
  try {
    const body = await getJSON("/api/v1/summary");
    const d = body.data;
    document.getElementById("kpis").innerHTML =
      kpi(d.count, "Readings") +
      kpi(Math.round(d.avg_sys) + " / " + Math.round(d.avg_dia), "Average SYS / DIA") +
      kpi(d.max_reading || "-", "Highest reading") +
      kpi(d.norm_percent.toFixed(1) + "%", "In norm");
  } catch (err) {
    document.getElementById("kpis").innerHTML = kpi("-", err.message);
  }
}

async function loadChart(name) {
  current = name;
  document.querySelectorAll("nav.tabs button").forEach(function (b) {
    b.classList.toggle("active", b.dataset.chart === name);
  });
  try {
    const body = await getJSON("/api/v1/charts/" + name);
    Plotly.react("chart", body.data.figure.data, body.data.figure.layout, {responsive: true});
  } catch (err) {
    document.getElementById("chart").innerText = err.message;
  }
}

async function loadTabs() {
  const body = await getJSON("/api/v1/charts");
  const tabs = document.getElementById("tabs");
  tabs.innerHTML = "";
  body.data.charts.forEach(function (name) {
    const b = document.createElement("button");
    b.dataset.chart = name;
    b.innerText = chartTitles[name] || name;
    b.onclick = function () { loadChart(name); };
    tabs.appendChild(b);
  });
}

document.getElementById("refresh").onclick = async function () {
  const status = document.getElementById("status");
  status.innerText = "Refreshing...";
  try {
    const body = await getJSON("/api/v1/refresh", {method: "POST"});
    const d = body.data;
    status.innerHTML = "Loaded " + d.loaded + " readings from " + d.source +
      (d.stale ? ' <span class="stale">(stale cache: ' + d.warning + ")</span>" : "");
    await loadSummary();
    await loadChart(current);
  } catch (err) {
    status.innerText = err.message;
  }
};

document.getElementById("export").onclick = async function () {
  const status = document.getElementById("status");
  try {
    const body = await getJSON("/api/v1/export", {method: "POST"});
    status.innerText = "Report saved as " + body.data.file;
  } catch (err) {
    status.innerText = err.message;
  }
};

(async function () {
  await loadTabs();
  await loadSummary();
  await loadChart(current);
})();
</script>
</body>
</html>
`
