package grievance

import "fmt"

// DefectMessage is the customer notice raised when production finishes with defects.
func DefectMessage(defective, total int) string {
	return fmt.Sprintf("Dear Customer,\n"+
		"We regret to inform you that %d out of the %d pens you ordered were found to be defective. "+
		"We sincerely apologize for the inconvenience caused. "+
		"Please let us know if you would prefer to cancel the shipment or receive the remaining non-defective pens. "+
		"We appreciate your understanding and will act promptly based on your preference.", defective, total)
}
