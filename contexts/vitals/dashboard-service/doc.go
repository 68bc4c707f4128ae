// Package dashboardservice turns the processed measurement dataset into
// the dashboard surface: ten plotly figures, the KPI summary block and the
// standalone HTML report export.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package dashboardservice
