package bot

import "fmt"

// basicStrategyTable is the published four-to-eight deck basic
// strategy: pairs, soft totals and hard totals against the ten dealer
// upcards 2 through ace.
const basicStrategyTable = `` +
	//   23456789TA
	"A-A=PPPPPPPPPP\n" +
	"T-T=SSSSSSSSSS\n" +
	"9-9=PPPPPSPPSS\n" +
	"8-8=PPPPPPPPPP\n" +
	"7-7=PPPPPPHHHH\n" +
	"6-6=PPPPPHHHHH\n" +
	"5-5=DDDDDDDDHH\n" +
	"4-4=HHHPPHHHHH\n" +
	"3-3=PPPPPPHHHH\n" +
	"2-2=PPPPPPHHHH\n" +
	"A-9=SSSSSSSSSS\n" +
	"A-8=SSSSDSSSSS\n" +
	"A-7=DDDDDSSHHH\n" +
	"A-6=HDDDDHHHHH\n" +
	"A-5=HHDDDHHHHH\n" +
	"A-4=HHDDDHHHHH\n" +
	"A-3=HHHDDHHHHH\n" +
	"A-2=HHHDDHHHHH\n" +
	" 20=SSSSSSSSSS\n" +
	" 19=SSSSSSSSSS\n" +
	" 18=SSSSSSSSSS\n" +
	" 17=SSSSSSSSSS\n" +
	" 16=SSSSSHHHHH\n" +
	" 15=SSSSSHHHHH\n" +
	" 14=SSSSSHHHHH\n" +
	" 13=SSSSSHHHHH\n" +
	" 12=HHSSSHHHHH\n" +
	" 11=DDDDDDDDDD\n" +
	" 10=DDDDDDDDHH\n" +
	"  9=HDDDDHHHHH\n" +
	"  8=HHHHHHHHHH\n" +
	"  7=HHHHHHHHHH\n" +
	"  6=HHHHHHHHHH\n" +
	"  5=HHHHHHHHHH"

// NewBasic creates the basic-strategy table bot
func NewBasic() *TableBot {
	rules, err := ParseStrategy(basicStrategyTable)
	if err != nil {
		// The table is a compile-time constant; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("bot: basic strategy table is malformed: %v", err))
	}

	return NewCustom("basic", rules)
}
