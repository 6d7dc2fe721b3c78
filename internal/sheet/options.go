package sheet

import "fmt"

var (
	CategoryOptions = []string{
		"Invoceable",
		"Non Invoiceable",
		"Personal Jobs",
		"Marketing & Branding",
	}

	SubcategoryOptions = []string{
		"Corrective action",
		"Idea",
		"Monthly management meeting",
		"Preventive action",
		"Training attended",
		"Training Provided",
		"Cash Collection",
		"Client Calls",
		"Client Emails",
		"Client Meetings",
		"Cost Controll",
		"Inter Division Contribution",
		"Client Complaint",
	}

	JobOptions = []string{
		"Effism/2020/ESOL/Oper",
		"Effism/2020/ESOL/EFFISM",
		"Effism/2020/ESOL/IBC",
		"AES/JN/2024/HYDRAULICS",
		"AES/IN/2022/BIZEVENTS",
		"ESOL/AIMRI/LMS1.0/24",
		"ESOL/AMR/WEBS/24",
		"AES/JN/2024/EIT",
		"ESOL/AIMRIIN/WEBS/25",
		"ESOL/ONE/AM/WBS/25",
		"ESOL/AIMRI/EFSM 2.0/23",
		"AES/JN/2024/YACHTEK",
		"AES/JN/2022/AIMRIIND",
	}

	StatusOptions = completionOptions()

	// every 5 minutes across the day, "00:00" through "23:55"
	TimeOptions = clockOptions(5)
)

func completionOptions() []string {
	opts := make([]string, 0, 12)
	for pct := 100; pct >= 45; pct -= 5 {
		opts = append(opts, fmt.Sprintf("%d", pct))
	}
	return opts
}

func clockOptions(step int) []string {
	opts := make([]string, 0, 24*60/step)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += step {
			opts = append(opts, FormatClock(h, m))
		}
	}
	return opts
}
