/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stackservice

import (
	"fmt"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
)

func workloadName(stackName string) string {
	return fmt.Sprintf("pulumi-%s", stackName)
}

func labelsForStack(stack *pulumiv1.PulumiStack) map[string]string {
	return map[string]string{
		"pulumi.stromee.de/stack": stack.Name,
	}
}

func buildServiceAccount(stack *pulumiv1.PulumiStack) *corev1.ServiceAccount {
	return &corev1.ServiceAccount{
		ObjectMeta: metav1.ObjectMeta{
			Name:      stack.Name,
			Namespace: stack.Namespace,
			Labels:    labelsForStack(stack),
		},
	}
}

func buildRole(stack *pulumiv1.PulumiStack) *rbacv1.Role {
	return &rbacv1.Role{
		ObjectMeta: metav1.ObjectMeta{
			Name:      stack.Name,
			Namespace: stack.Namespace,
			Labels:    labelsForStack(stack),
		},
		Rules: []rbacv1.PolicyRule{
			{
				APIGroups: []string{"*"},
				Resources: []string{"*"},
				Verbs:     []string{"*"},
			},
		},
	}
}

func buildRoleBinding(stack *pulumiv1.PulumiStack) *rbacv1.RoleBinding {
	return &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      stack.Name,
			Namespace: stack.Namespace,
			Labels:    labelsForStack(stack),
		},
		Subjects: []rbacv1.Subject{
			{
				Kind:      "ServiceAccount",
				Name:      stack.Name,
				Namespace: stack.Namespace,
			},
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: "rbac.authorization.k8s.io",
			Kind:     "Role",
			Name:     stack.Name,
		},
	}
}

// buildCronJob composes the CronJob that periodically runs the worker
// image against the stack's cluster-local config, co-located in the
// operator's own namespace (operatorNamespace), not the stack's.
func buildCronJob(stack *pulumiv1.PulumiStack, operatorNamespace, workerImage string) *batchv1.CronJob {
	backoffLimit := int32(100)
	successHistory := int32(1)
	failedHistory := int32(1)

	mainEnv := []corev1.EnvVar{
		{Name: "PULUMI_STACK", Value: stack.Name},
		{Name: "WATCH_NAMESPACE", Value: stack.Namespace},
		{Name: "OPERATOR_NAMESPACE", Value: operatorNamespace},
	}
	mainEnv = append(mainEnv, stack.Spec.MainContainer.ExtraEnv...)

	podAnnotations := map[string]string{}
	for k, v := range stack.Spec.MainPod.ExtraAnnotations {
		podAnnotations[k] = v
	}

	return &batchv1.CronJob{
		ObjectMeta: metav1.ObjectMeta{
			Name:      workloadName(stack.Name),
			Namespace: operatorNamespace,
			Labels:    labelsForStack(stack),
		},
		Spec: batchv1.CronJobSpec{
			Schedule:                   "* * * * *",
			ConcurrencyPolicy:          batchv1.ForbidConcurrent,
			SuccessfulJobsHistoryLimit: &successHistory,
			FailedJobsHistoryLimit:     &failedHistory,
			JobTemplate: batchv1.JobTemplateSpec{
				Spec: batchv1.JobSpec{
					BackoffLimit: &backoffLimit,
					Template: corev1.PodTemplateSpec{
						ObjectMeta: metav1.ObjectMeta{
							Labels:      labelsForStack(stack),
							Annotations: podAnnotations,
						},
						Spec: corev1.PodSpec{
							ServiceAccountName: stack.Name,
							RestartPolicy:      corev1.RestartPolicyNever,
							InitContainers:     stack.Spec.InitContainers,
							Volumes:            stack.Spec.ExtraVolumes,
							Containers: []corev1.Container{
								{
									Name:            "pulumi",
									Image:           workerImage,
									ImagePullPolicy: corev1.PullAlways,
									Env:             mainEnv,
									VolumeMounts:    stack.Spec.MainContainer.ExtraVolumeMounts,
								},
							},
						},
					},
				},
			},
		},
	}
}
