package payroll

import "fmt"

const (
	ChangeAdded     = "added"
	ChangeModified  = "modified"
	ChangeUnchanged = "unchanged"
)

type EmployeeChange struct {
	UserID       string `json:"userId"`
	EmployeeName string `json:"employeeName"`
	Status       string `json:"status"`

	NetSalaryDiffCents int64    `json:"netSalaryDiffCents"`
	Details            []string `json:"details,omitempty"`
}

type ChangesSummary struct {
	Added     int `json:"added"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`

	Changes []EmployeeChange `json:"changes,omitempty"`
}

// DiffRuns membandingkan hasil payroll versi baru dengan versi
// sebelumnya per karyawan. Sebuah karyawan dianggap berubah hanya bila
// net salary-nya bergeser atau status full attendance-nya berbalik.
func DiffRuns(prev, curr []EmployeePayroll) *ChangesSummary {
	prevByUser := make(map[string]EmployeePayroll, len(prev))
	for _, p := range prev {
		prevByUser[p.UserID] = p
	}

	summary := &ChangesSummary{}
	for _, c := range curr {
		before, existed := prevByUser[c.UserID]
		if !existed {
			summary.Added++
			summary.Changes = append(summary.Changes, EmployeeChange{
				UserID:             c.UserID,
				EmployeeName:       c.EmployeeName,
				Status:             ChangeAdded,
				NetSalaryDiffCents: c.NetSalaryCents,
				Details: []string{
					fmt.Sprintf("net salary %s (new employee)", formatCents(c.NetSalaryCents)),
				},
			})
			continue
		}

		netDiff := c.NetSalaryCents - before.NetSalaryCents
		if netDiff == 0 && c.FullAttendance == before.FullAttendance {
			summary.Unchanged++
			continue
		}

		change := EmployeeChange{
			UserID:             c.UserID,
			EmployeeName:       c.EmployeeName,
			Status:             ChangeModified,
			NetSalaryDiffCents: netDiff,
		}
		if netDiff != 0 {
			change.Details = append(change.Details, fmt.Sprintf(
				"net salary %s -> %s",
				formatCents(before.NetSalaryCents), formatCents(c.NetSalaryCents),
			))
		}
		if c.FullAttendance != before.FullAttendance {
			change.Details = append(change.Details, fmt.Sprintf(
				"full attendance %t -> %t",
				before.FullAttendance, c.FullAttendance,
			))
		}
		summary.Modified++
		summary.Changes = append(summary.Changes, change)
	}

	return summary
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
