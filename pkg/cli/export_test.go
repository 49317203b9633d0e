package cli

var RenderDashboard = renderDashboard
