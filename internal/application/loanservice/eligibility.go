package loanservice

import "github.com/Nataraj2001/LMS/internal/domain"

// CheckEligibility evaluates a new application against the borrower's
// existing loan set. It performs no I/O and no mutation; the first matching
// rule wins and a nil return means the application may proceed.
func CheckEligibility(application *domain.LoanApplication, existing []domain.LoanApplication) error {
	if err := checkLoanTypeRestrictions(application, existing); err != nil {
		return err
	}
	if err := checkEmploymentType(application); err != nil {
		return err
	}
	return checkDuplicateApproved(application, existing)
}

func checkLoanTypeRestrictions(application *domain.LoanApplication, existing []domain.LoanApplication) error {
	var hasPersonal, hasBusiness, hasEducation bool
	for _, loan := range existing {
		switch loan.LoanType {
		case domain.LoanPersonal:
			hasPersonal = true
		case domain.LoanBusiness:
			hasBusiness = true
		case domain.LoanEducation:
			hasEducation = true
		}
	}

	newType := application.LoanType

	if hasEducation {
		return domain.NewValidationError("You cannot apply for any other loan if you already have an Education Loan.")
	}

	if hasPersonal && (newType == domain.LoanEducation || newType == domain.LoanBusiness) {
		return domain.NewValidationError("You cannot apply for an Education or Business Loan if you already have a Personal Loan.")
	}

	if hasBusiness && newType == domain.LoanPersonal {
		return domain.NewValidationError("You cannot apply for a Personal Loan if you already have a Business Loan.")
	}

	// Shadowed by the personal-loan rule above; kept so the rule order stays
	// compatible with the documented policy.
	if hasBusiness && hasPersonal && newType == domain.LoanEducation {
		return domain.NewValidationError("You cannot apply for an Education Loan if you already have both a Personal and Business Loan approved.")
	}

	return nil
}

func checkEmploymentType(application *domain.LoanApplication) error {
	switch application.LoanType {
	case domain.LoanPersonal:
		if application.EmploymentType != domain.EmploymentSalaried {
			return domain.NewValidationError("Personal Loan can only be applied by salaried individuals.")
		}
	case domain.LoanBusiness:
		if application.EmploymentType != domain.EmploymentSelfEmployed {
			return domain.NewValidationError("Business Loan can only be applied by self-employed individuals.")
		}
	case domain.LoanEducation:
		if application.EmploymentType != domain.EmploymentStudent {
			return domain.NewValidationError("Educational Loan can only be applied by students.")
		}
	}
	return nil
}

func checkDuplicateApproved(application *domain.LoanApplication, existing []domain.LoanApplication) error {
	for _, loan := range existing {
		if loan.LoanType == application.LoanType && loan.Status == domain.LoanApproved {
			return domain.NewValidationError("You already have an approved %s. You cannot apply again.", application.LoanType)
		}
	}
	return nil
}
